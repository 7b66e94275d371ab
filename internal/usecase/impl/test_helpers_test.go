package impl

import (
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"academy/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func strPtr(s string) *string {
	return &s
}

func newLockedPurchase(email, courseID, fingerprint string) *entity.Purchase {
	p := &entity.Purchase{
		ID:             uuid.New(),
		Email:          email,
		CourseID:       courseID,
		IsDeviceLocked: true,
		DeviceInfo:     json.RawMessage(`{"platform":"MacIntel"}`),
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
	if fingerprint != "" {
		p.DeviceFingerprint = strPtr(fingerprint)
	}

	return p
}
