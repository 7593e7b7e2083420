// Package qrcode renders pickup passes as scannable PNG codes and reads them
// back.
package qrcode

import (
	"encoding/json"
	"strings"

	"dropzone/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	payloadKind    = "pickup_pass"
	payloadVersion = 1
	defaultSize    = 256
)

var recoveryLevels = map[string]qrcode.RecoveryLevel{
	"L": qrcode.Low,
	"M": qrcode.Medium,
	"Q": qrcode.High,
	"H": qrcode.Highest,
}

// Payload is the JSON text stored in a pickup pass code.
type Payload struct {
	Kind    string `json:"type"`
	Version int    `json:"v,omitempty"`
	Pass    string `json:"pass"`
}

type passCodec struct {
	size     int
	recovery qrcode.RecoveryLevel
}

// NewQRCodeService returns a codec drawing size-pixel codes at the given
// recovery level ("L", "M", "Q" or "H"). Unknown levels fall back to "M".
func NewQRCodeService(size int, recovery string) service.QRCodeService {
	level, ok := recoveryLevels[strings.ToUpper(recovery)]
	if !ok {
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultSize
	}

	return &passCodec{size: size, recovery: level}
}

func (c *passCodec) GeneratePickupPassQR(pass string) ([]byte, error) {
	if pass == "" {
		return nil, errors.New("qrcode: pickup pass is empty")
	}

	text, err := json.Marshal(Payload{Kind: payloadKind, Version: payloadVersion, Pass: pass})
	if err != nil {
		return nil, errors.Wrap(err, "qrcode: encode payload")
	}

	png, err := qrcode.Encode(string(text), c.recovery, c.size)
	if err != nil {
		return nil, errors.Wrap(err, "qrcode: render png")
	}

	return png, nil
}

func (c *passCodec) ParsePickupPassQR(qrData string) (string, error) {
	var payload Payload
	if err := json.Unmarshal([]byte(strings.TrimSpace(qrData)), &payload); err != nil {
		return "", errors.Wrap(err, "qrcode: scanned data is not a pickup pass payload")
	}

	switch {
	case payload.Kind != payloadKind:
		return "", errors.Errorf("qrcode: unexpected payload type %q", payload.Kind)
	case payload.Version > payloadVersion:
		return "", errors.Errorf("qrcode: unsupported payload version %d", payload.Version)
	case payload.Pass == "":
		return "", errors.New("qrcode: payload carries no pickup pass")
	}

	return payload.Pass, nil
}
