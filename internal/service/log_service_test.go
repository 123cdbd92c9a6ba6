package service

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/kiss-kedaya/log-system/internal/adapter"
	"github.com/kiss-kedaya/log-system/internal/config"
	"github.com/kiss-kedaya/log-system/internal/crypto"
	"github.com/kiss-kedaya/log-system/internal/logger"
	"github.com/kiss-kedaya/log-system/internal/mock"
	"github.com/kiss-kedaya/log-system/models"
)

func testPublicKeyPEM(t *testing.T) string {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	return string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der}))
}

// newTestLogSvc builds a logService over gomock doubles.
func newTestLogSvc(t *testing.T, ctrl *gomock.Controller) (*logService, *mock.MockPacketService, *mock.MockLogCollector) {
	t.Helper()
	mockPackets := mock.NewMockPacketService(ctrl)
	mockCollector := mock.NewMockLogCollector(ctrl)

	svc := NewLogService(mockPackets, mockCollector).(*logService)
	return svc, mockPackets, mockCollector
}

func TestSetPublicKey_Valid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestLogSvc(t, ctrl)

	require.NoError(t, svc.SetPublicKey(testPublicKeyPEM(t)))
	assert.NotNil(t, svc.key())
}

func TestSetPublicKey_Malformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestLogSvc(t, ctrl)

	err := svc.SetPublicKey("not a key")
	assert.ErrorIs(t, err, crypto.ErrKeyFormat)
	assert.Nil(t, svc.key(), "a failed parse must not install a key")
}

func TestSubmit_NoKeyConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Neither the crypto core nor the collector may be touched.
	svc, _, _ := newTestLogSvc(t, ctrl)

	err := svc.Submit(context.Background(), map[string]any{"event": "user_login"})
	assert.ErrorIs(t, err, crypto.ErrNoPublicKey)
}

func TestSubmit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockPackets, mockCollector := newTestLogSvc(t, ctrl)
	require.NoError(t, svc.SetPublicKey(testPublicKeyPEM(t)))

	payload := map[string]any{"event": "user_login", "user_id": 12345}
	packet := models.Packet{
		WrappedKey:  []byte{0x01},
		IV:          []byte{0x02},
		CipherBlock: []byte{0x03},
	}

	mockPackets.EXPECT().Seal(payload, gomock.Any()).Return(packet, nil)
	mockCollector.EXPECT().SubmitPacket(gomock.Any(), packet.Bytes()).Return(nil)

	assert.NoError(t, svc.Submit(context.Background(), payload))
}

func TestSubmit_SealFailureSkipsDelivery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockPackets, _ := newTestLogSvc(t, ctrl)
	require.NoError(t, svc.SetPublicKey(testPublicKeyPEM(t)))

	sealErr := errors.New("cipher broke")
	mockPackets.EXPECT().Seal(gomock.Any(), gomock.Any()).Return(models.Packet{}, sealErr)

	err := svc.Submit(context.Background(), "payload")
	assert.ErrorIs(t, err, sealErr)
}

func TestSubmit_DeliveryFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockPackets, mockCollector := newTestLogSvc(t, ctrl)
	require.NoError(t, svc.SetPublicKey(testPublicKeyPEM(t)))

	mockPackets.EXPECT().Seal(gomock.Any(), gomock.Any()).Return(models.Packet{CipherBlock: []byte{1}}, nil)
	mockCollector.EXPECT().SubmitPacket(gomock.Any(), gomock.Any()).Return(&adapter.StatusError{Code: 500})

	err := svc.Submit(context.Background(), "payload")

	var statusErr *adapter.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, 500, statusErr.Code)
}

func TestEncrypt_ReturnsWireForm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockPackets, _ := newTestLogSvc(t, ctrl)
	require.NoError(t, svc.SetPublicKey(testPublicKeyPEM(t)))

	packet := models.Packet{WrappedKey: []byte{0xAA}, IV: []byte{0xBB}, CipherBlock: []byte{0xCC}}
	mockPackets.EXPECT().Seal("raw", gomock.Any()).Return(packet, nil)

	blob, err := svc.Encrypt("raw")
	require.NoError(t, err)
	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC}, blob)
}

// TestSubmit_NoKeyNoNetworkCall wires the real adapter against a counting
// server to pin the invariant end to end: a missing key produces zero HTTP
// traffic, not just a pre-flight error.
func TestSubmit_NoKeyNoNetworkCall(t *testing.T) {
	var requests atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	collector, err := adapter.NewHTTPLogCollector(
		config.ClientAdapter{CollectorURL: srv.URL},
		config.ClientApp{},
		logger.Nop(),
	)
	require.NoError(t, err)

	svc := NewLogService(crypto.NewPacketService(), collector)

	err = svc.Submit(context.Background(), map[string]any{"event": "user_login"})
	require.ErrorIs(t, err, crypto.ErrNoPublicKey)
	assert.Zero(t, requests.Load(), "no key configured must mean no network call")
}
