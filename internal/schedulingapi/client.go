// Package schedulingapi is a typed client for the scheduling backend's HTTP
// JSON API. Every call unwraps the `{data: ...}` envelope except the slot
// lookup, which returns its payload verbatim. Failures are never retried and
// nothing is cached.
package schedulingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/barbershop-express/booking-web/internal/observability/metrics"
	"github.com/barbershop-express/booking-web/pkg/logging"
)

const defaultTimeout = 15 * time.Second

// Client issues requests against the scheduling backend.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *logging.Logger
	tracer     trace.Tracer
	metrics    *metrics.BookingMetrics
}

// NewClient constructs a backend API client. baseURL includes the /api prefix.
func NewClient(baseURL string, timeout time.Duration, logger *logging.Logger, m *metrics.BookingMetrics) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
		tracer:     otel.Tracer("booking-web.internal.schedulingapi"),
		metrics:    m,
	}
}

// ListServices returns the service catalog in server-provided order.
func (c *Client) ListServices(ctx context.Context) ([]Service, error) {
	var out envelope[[]Service]
	if err := c.doJSON(ctx, "list_services", http.MethodGet, "/services", nil, &out); err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return out.Data, nil
}

// CreateService adds a new service to the catalog.
func (c *Client) CreateService(ctx context.Context, req CreateServiceRequest) (*Service, error) {
	var out envelope[Service]
	if err := c.doJSON(ctx, "create_service", http.MethodPost, "/services", req, &out); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return &out.Data, nil
}

// DeleteService removes a service from the catalog.
func (c *Client) DeleteService(ctx context.Context, id int64) error {
	path := fmt.Sprintf("/services/%d", id)
	if err := c.doJSON(ctx, "delete_service", http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete service %d: %w", id, err)
	}
	return nil
}

// GetAvailableSlots returns the free time-of-day slots for a date. barberPhone,
// when non-empty, scopes the query to that establishment.
func (c *Client) GetAvailableSlots(ctx context.Context, date, barberPhone string) (*SlotsResponse, error) {
	q := url.Values{}
	q.Set("date", date)
	if barberPhone != "" {
		q.Set("barber_phone", barberPhone)
	}

	var out SlotsResponse
	if err := c.doJSON(ctx, "get_slots", http.MethodGet, "/appointments/slots?"+q.Encode(), nil, &out); err != nil {
		return nil, fmt.Errorf("get available slots: %w", err)
	}
	return &out, nil
}

// CreateAppointment books an appointment. The backend assigns the initial
// PENDING status.
func (c *Client) CreateAppointment(ctx context.Context, req CreateAppointmentRequest) (*Appointment, error) {
	var out envelope[Appointment]
	if err := c.doJSON(ctx, "create_appointment", http.MethodPost, "/appointments", req, &out); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}
	return &out.Data, nil
}

// ListAppointments returns every appointment, newest first.
func (c *Client) ListAppointments(ctx context.Context) ([]Appointment, error) {
	var out envelope[[]Appointment]
	if err := c.doJSON(ctx, "list_appointments", http.MethodGet, "/appointments", nil, &out); err != nil {
		return nil, fmt.Errorf("list appointments: %w", err)
	}
	return out.Data, nil
}

// UpdateAppointmentStatus moves an appointment to the given status.
func (c *Client) UpdateAppointmentStatus(ctx context.Context, id int64, status Status) (*Appointment, error) {
	path := fmt.Sprintf("/appointments/%d/status", id)
	var out envelope[Appointment]
	if err := c.doJSON(ctx, "update_status", http.MethodPut, path, updateStatusRequest{Status: status}, &out); err != nil {
		return nil, fmt.Errorf("update appointment %d status: %w", id, err)
	}
	return &out.Data, nil
}

func (c *Client) doJSON(ctx context.Context, operation, method, path string, body interface{}, out interface{}) error {
	endpoint := c.baseURL + path

	ctx, span := c.tracer.Start(ctx, "schedulingapi."+operation)
	defer span.End()

	var bodyReader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveBackendRequest(operation, "transport_error", time.Since(start).Seconds())
		return fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.metrics.ObserveBackendRequest(operation, "read_error", time.Since(start).Seconds())
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := string(respBody)
		if len(msg) > 300 {
			msg = msg[:300]
		}
		c.metrics.ObserveBackendRequest(operation, fmt.Sprintf("%d", resp.StatusCode), time.Since(start).Seconds())
		c.logger.Warn("scheduling API non-2xx response", "status", resp.StatusCode, "path", path, "body", msg)
		return fmt.Errorf("scheduling API returned %d: %s", resp.StatusCode, msg)
	}
	c.metrics.ObserveBackendRequest(operation, "ok", time.Since(start).Seconds())

	if len(respBody) == 0 || out == nil {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
