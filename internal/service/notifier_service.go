package service

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"custody-gateway/config"
	"custody-gateway/internal/core/domain"
	"custody-gateway/internal/core/ports"

	"github.com/rs/zerolog"
)

// notifierRetryIntervals are the delivery retry backoff steps.
var notifierRetryIntervals = []time.Duration{
	15 * time.Second,
	60 * time.Second,
	2 * time.Minute,
	5 * time.Minute,
	10 * time.Minute,
}

// Webhook event types
const (
	EventAccessControlUpdate = "ACCESS_CONTROL_UPDATE"
	EventDepositSettled      = "DEPOSIT_SETTLED"
	EventWithdrawSettled     = "WITHDRAW_SETTLED"
)

// WebhookPayload is the JSON structure delivered to webhook URLs.
type WebhookPayload struct {
	EventType string          `json:"event_type"`
	Data      json.RawMessage `json:"data"`
	Signature string          `json:"signature"`
}

// PolicyChangeData carries an access-control swap announcement.
type PolicyChangeData struct {
	Version            uint64 `json:"version"`
	RegistryIdentifier string `json:"registry_identifier"`
	SetBy              string `json:"set_by"`
	Timestamp          int64  `json:"timestamp"`
}

// TransferData carries a settled deposit or withdrawal.
type TransferData struct {
	TransferID  string `json:"transfer_id"`
	ReferenceID string `json:"reference_id"`
	Direction   string `json:"direction"`
	Kind        string `json:"kind"`
	Token       string `json:"token,omitempty"`
	TokenID     *int64 `json:"token_id,omitempty"`
	Principal   string `json:"principal"`
	Recipient   string `json:"recipient"`
	Amount      int64  `json:"amount"`
	Timestamp   int64  `json:"timestamp"`
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// notifierService implements ports.NotifierService. Policy changes fan
// out to the statically configured endpoints signed with the shared
// secret; transfer events go to the claim owner's webhook URL signed with
// their own secret key.
type notifierService struct {
	principalRepo ports.PrincipalRepository
	encSvc        ports.EncryptionService
	sigSvc        ports.SignatureService
	httpClient    HTTPClient
	cfg           config.NotifierConfig
	log           zerolog.Logger
}

// NewNotifierService creates a new notifier service.
func NewNotifierService(
	principalRepo ports.PrincipalRepository,
	encSvc ports.EncryptionService,
	sigSvc ports.SignatureService,
	httpClient HTTPClient,
	cfg config.NotifierConfig,
	log zerolog.Logger,
) ports.NotifierService {
	return &notifierService{
		principalRepo: principalRepo,
		encSvc:        encSvc,
		sigSvc:        sigSvc,
		httpClient:    httpClient,
		cfg:           cfg,
		log:           log,
	}
}

// NotifyPolicyChange announces an access-control swap to every configured
// endpoint.
func (s *notifierService) NotifyPolicyChange(ctx context.Context, version *domain.ControllerVersion) error {
	if len(s.cfg.Endpoints) == 0 {
		s.log.Debug().Msg("webhook: no policy endpoints configured, skipping")
		return nil
	}

	data := PolicyChangeData{
		Version:            version.Version,
		RegistryIdentifier: version.RegistryIdentifier,
		SetBy:              version.SetBy.String(),
		Timestamp:          time.Now().Unix(),
	}
	payload, err := s.buildPayload(EventAccessControlUpdate, data, s.cfg.Secret)
	if err != nil {
		return err
	}

	for _, endpoint := range s.cfg.Endpoints {
		go s.deliverWithRetries(endpoint, payload, version.RegistryIdentifier)
	}
	return nil
}

// NotifyTransfer announces a settled transfer to the claim owner's
// configured webhook URL.
func (s *notifierService) NotifyTransfer(ctx context.Context, transfer *domain.Transfer) error {
	principal, err := s.principalRepo.GetByAddress(ctx, transfer.Principal)
	if err != nil {
		s.log.Error().Err(err).Str("principal", transfer.Principal.String()).Msg("webhook: failed to fetch principal")
		return err
	}
	if principal == nil || principal.WebhookURL == "" {
		s.log.Debug().Str("principal", transfer.Principal.String()).Msg("webhook: no webhook URL configured, skipping")
		return nil
	}

	eventType := EventDepositSettled
	if !transfer.IsDeposit() {
		eventType = EventWithdrawSettled
	}

	data := TransferData{
		TransferID:  transfer.ID.String(),
		ReferenceID: transfer.ReferenceID,
		Direction:   string(transfer.Direction),
		Kind:        string(transfer.Kind),
		Token:       transfer.Token.String(),
		TokenID:     transfer.TokenID,
		Principal:   transfer.Principal.String(),
		Recipient:   transfer.Recipient.String(),
		Amount:      transfer.Amount,
		Timestamp:   time.Now().Unix(),
	}

	secretKey, err := s.encSvc.Decrypt(principal.SecretKeyEnc)
	if err != nil {
		s.log.Error().Err(err).Msg("webhook: failed to decrypt principal secret key")
		return err
	}

	payload, err := s.buildPayload(eventType, data, secretKey)
	if err != nil {
		return err
	}

	go s.deliverWithRetries(principal.WebhookURL, payload, transfer.ID.String())
	return nil
}

func (s *notifierService) buildPayload(eventType string, data any, secret string) ([]byte, error) {
	dataBytes, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	payload := WebhookPayload{
		EventType: eventType,
		Data:      dataBytes,
		Signature: s.sigSvc.Sign(secret, string(dataBytes)),
	}
	return json.Marshal(payload)
}

// deliverWithRetries attempts delivery with backoff until a 2xx response.
func (s *notifierService) deliverWithRetries(url string, payload []byte, ref string) {
	for attempt := 0; attempt <= len(notifierRetryIntervals); attempt++ {
		if attempt > 0 {
			time.Sleep(notifierRetryIntervals[attempt-1])
		}

		req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			s.log.Error().Err(err).Str("ref", ref).Int("attempt", attempt+1).Msg("webhook: failed to create request")
			continue
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.httpClient.Do(req)
		if err != nil {
			s.log.Warn().Err(err).Str("ref", ref).Int("attempt", attempt+1).Msg("webhook: delivery failed")
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			s.log.Info().Str("ref", ref).Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("webhook: delivered successfully")
			return
		}

		s.log.Warn().Str("ref", ref).Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("webhook: non-2xx response, retrying")
	}

	s.log.Error().Str("ref", ref).Msg("webhook: all retry attempts exhausted")
}
