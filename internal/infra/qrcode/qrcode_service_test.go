package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		recovery string
		size     int
		want     passCodec
	}{
		{recovery: "L", size: 128, want: passCodec{size: 128, recovery: qrcode.Low}},
		{recovery: "q", size: 128, want: passCodec{size: 128, recovery: qrcode.High}},
		{recovery: "H", size: 512, want: passCodec{size: 512, recovery: qrcode.Highest}},
		{recovery: "bogus", size: 0, want: passCodec{size: defaultSize, recovery: qrcode.Medium}},
	}

	for _, tt := range tests {
		t.Run(tt.recovery, func(t *testing.T) {
			codec, ok := NewQRCodeService(tt.size, tt.recovery).(*passCodec)
			require.True(t, ok)
			assert.Equal(t, tt.want, *codec)
		})
	}
}

func TestGeneratePickupPassQR(t *testing.T) {
	svc := NewQRCodeService(200, "M")

	data, err := svc.GeneratePickupPassQR("header.payload.signature")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 200, img.Bounds().Dx())

	_, err = svc.GeneratePickupPassQR("")
	assert.Error(t, err)
}

func TestParsePickupPassQR(t *testing.T) {
	svc := NewQRCodeService(200, "M")

	tests := []struct {
		name    string
		data    string
		want    string
		wantErr string
	}{
		{name: "current version", data: `{"type":"pickup_pass","v":1,"pass":"abc.def.ghi"}`, want: "abc.def.ghi"},
		{name: "unversioned with whitespace", data: " {\"type\":\"pickup_pass\",\"pass\":\"abc.def.ghi\"}\n", want: "abc.def.ghi"},
		{name: "not json", data: "abc.def.ghi", wantErr: "not a pickup pass payload"},
		{name: "other kind", data: `{"type":"listing","pass":"abc"}`, wantErr: `unexpected payload type "listing"`},
		{name: "newer version", data: `{"type":"pickup_pass","v":2,"pass":"abc"}`, wantErr: "unsupported payload version 2"},
		{name: "missing pass", data: `{"type":"pickup_pass"}`, wantErr: "no pickup pass"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ParsePickupPassQR(tt.data)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
