package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nurikhwanidris/urusmasjid/pkg/config"
	"github.com/redis/go-redis/v9"
)

var (
	ErrPrayerUpstream = errors.New("prayer times upstream unavailable")
	ErrUnknownZone    = errors.New("unknown JAKIM zone")
)

// PrayerTimes holds one day of prayer times for a JAKIM zone
type PrayerTimes struct {
	Zone    string `json:"zone"`
	Date    string `json:"date"`
	Imsak   string `json:"imsak"`
	Fajr    string `json:"fajr"`
	Syuruk  string `json:"syuruk"`
	Dhuhr   string `json:"dhuhr"`
	Asr     string `json:"asr"`
	Maghrib string `json:"maghrib"`
	Isha    string `json:"isha"`
}

// PrayerService proxies the JAKIM e-Solat API with a Redis cache in front,
// so mosque pages do not hit the upstream on every view.
type PrayerService interface {
	// GetToday returns today's prayer times for a zone
	GetToday(ctx context.Context, zone string) (*PrayerTimes, error)
}

// prayerService implements PrayerService
type prayerService struct {
	redis  *redis.Client
	client *http.Client
	cfg    *config.PrayerConfig
}

// NewPrayerService creates a new PrayerService
func NewPrayerService(redisClient *redis.Client, cfg *config.PrayerConfig) PrayerService {
	return &prayerService{
		redis: redisClient,
		client: &http.Client{
			Timeout: cfg.Timeout,
		},
		cfg: cfg,
	}
}

// esolatResponse mirrors the relevant part of the e-Solat API payload
type esolatResponse struct {
	Zone       string `json:"zone"`
	Status     string `json:"status"`
	PrayerTime []struct {
		Date    string `json:"date"`
		Imsak   string `json:"imsak"`
		Fajr    string `json:"fajr"`
		Syuruk  string `json:"syuruk"`
		Dhuhr   string `json:"dhuhr"`
		Asr     string `json:"asr"`
		Maghrib string `json:"maghrib"`
		Isha    string `json:"isha"`
	} `json:"prayerTime"`
}

// GetToday returns today's prayer times for a zone
func (s *prayerService) GetToday(ctx context.Context, zone string) (*PrayerTimes, error) {
	if zone == "" {
		return nil, ErrUnknownZone
	}

	cacheKey := fmt.Sprintf("prayer:%s:%s", zone, time.Now().Format("2006-01-02"))
	if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
		times := &PrayerTimes{}
		if err := json.Unmarshal([]byte(cached), times); err == nil {
			return times, nil
		}
	}

	times, err := s.fetch(ctx, zone)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(times); err == nil {
		// Cache failures are not fatal; the next request fetches again.
		s.redis.Set(ctx, cacheKey, payload, s.cfg.CacheTTL)
	}
	return times, nil
}

func (s *prayerService) fetch(ctx context.Context, zone string) (*PrayerTimes, error) {
	url := fmt.Sprintf("%s?r=esolatApi/TakwimSolat&period=today&zone=%s", s.cfg.BaseURL, zone)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPrayerUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrPrayerUpstream, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var parsed esolatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPrayerUpstream, err)
	}
	if len(parsed.PrayerTime) == 0 {
		return nil, ErrUnknownZone
	}

	day := parsed.PrayerTime[0]
	return &PrayerTimes{
		Zone:    zone,
		Date:    day.Date,
		Imsak:   day.Imsak,
		Fajr:    day.Fajr,
		Syuruk:  day.Syuruk,
		Dhuhr:   day.Dhuhr,
		Asr:     day.Asr,
		Maghrib: day.Maghrib,
		Isha:    day.Isha,
	}, nil
}
