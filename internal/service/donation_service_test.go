package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"testing"
	"time"

	"github.com/nurikhwanidris/urusmasjid/internal/domain"
	"github.com/nurikhwanidris/urusmasjid/internal/dto"
)

func setupDonationFixture() (*mockDonationRepo, DonationService) {
	donationRepo := newMockDonationRepo()
	mosqueRepo := newMockMosqueRepo()
	mosqueRepo.mosques["msq-1"] = &domain.Mosque{
		ID:                 "msq-1",
		Name:               "Masjid Al-Hidayah",
		VerificationStatus: domain.MosqueStatusVerified,
	}
	return donationRepo, NewDonationService(donationRepo, mosqueRepo)
}

func TestRecordDonation_ReceiptFormat(t *testing.T) {
	_, svc := setupDonationFixture()

	donation, err := svc.Record(context.Background(), "msq-1", &dto.CreateDonationRequest{
		Amount:        50,
		DonorName:     "Siti Aminah",
		PaymentMethod: domain.PaymentMethodCash,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	today := time.Now().Format("20060102")
	pattern := fmt.Sprintf(`^RCP%s[0-9A-F]{4}$`, today)
	if matched, _ := regexp.MatchString(pattern, donation.ReceiptNumber); !matched {
		t.Errorf("receipt number %q does not match %s", donation.ReceiptNumber, pattern)
	}
}

func TestRecordDonation_StatusByMethod(t *testing.T) {
	_, svc := setupDonationFixture()

	cash, err := svc.Record(context.Background(), "msq-1", &dto.CreateDonationRequest{
		Amount:        25,
		PaymentMethod: domain.PaymentMethodCash,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cash.Status != domain.DonationStatusCompleted {
		t.Errorf("cash donation should complete immediately, got %s", cash.Status)
	}

	qr, err := svc.Record(context.Background(), "msq-1", &dto.CreateDonationRequest{
		Amount:        100,
		PaymentMethod: domain.PaymentMethodDuitNowQR,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if qr.Status != domain.DonationStatusPending {
		t.Errorf("QR donation should await confirmation, got %s", qr.Status)
	}
}

func TestRecordDonation_UniqueReceiptRetry(t *testing.T) {
	donationRepo, svc := setupDonationFixture()

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		donation, err := svc.Record(context.Background(), "msq-1", &dto.CreateDonationRequest{
			Amount:        float64(i + 1),
			PaymentMethod: domain.PaymentMethodCash,
		})
		if err != nil {
			t.Fatalf("donation %d: %v", i, err)
		}
		if seen[donation.ReceiptNumber] {
			t.Fatalf("duplicate receipt number %s", donation.ReceiptNumber)
		}
		seen[donation.ReceiptNumber] = true
	}
	if len(donationRepo.donations) != 20 {
		t.Errorf("expected 20 donations stored, got %d", len(donationRepo.donations))
	}
}

func TestRecordDonation_Validation(t *testing.T) {
	_, svc := setupDonationFixture()

	if _, err := svc.Record(context.Background(), "msq-1", &dto.CreateDonationRequest{
		Amount:        0,
		PaymentMethod: domain.PaymentMethodCash,
	}); err == nil {
		t.Error("expected error for zero amount")
	}

	if _, err := svc.Record(context.Background(), "no-such-mosque", &dto.CreateDonationRequest{
		Amount:        10,
		PaymentMethod: domain.PaymentMethodCash,
	}); !errors.Is(err, ErrMosqueNotFound) {
		t.Errorf("expected ErrMosqueNotFound, got %v", err)
	}
}

func TestCompleteDonation(t *testing.T) {
	donationRepo, svc := setupDonationFixture()

	donation, err := svc.Record(context.Background(), "msq-1", &dto.CreateDonationRequest{
		Amount:        100,
		PaymentMethod: domain.PaymentMethodBankTransfer,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	completed, err := svc.Complete(context.Background(), donation.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if completed.Status != domain.DonationStatusCompleted {
		t.Errorf("expected completed, got %s", completed.Status)
	}
	if donationRepo.donations[donation.ID].Status != domain.DonationStatusCompleted {
		t.Error("completion not persisted")
	}

	total, err := svc.Total(context.Background(), "msq-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 100 {
		t.Errorf("expected total 100, got %v", total)
	}
}
