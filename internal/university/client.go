package university

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/danicpp/course-advisor/internal/domain"
)

// Config holds the connection parameters for the university backend.
type Config struct {
	Endpoint  string
	TimeoutMs int
}

// Client talks to the university backend over HTTP. One user action maps
// to one call; failed calls are surfaced, never retried automatically.
type Client struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a backend client. A nil observer discards call events.
func NewClient(cfg Config, observer Observer) *Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &Client{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

// ListCourses fetches the full course catalog.
func (c *Client) ListCourses(ctx context.Context) ([]*domain.Course, error) {
	var payload []coursePayload
	if err := c.call(ctx, "list_courses", http.MethodGet, "/api/courses", nil, &payload); err != nil {
		return nil, err
	}
	courses := make([]*domain.Course, 0, len(payload))
	for _, p := range payload {
		courses = append(courses, p.toDomain())
	}
	return courses, nil
}

// CheckConflict delegates a conflict check to the backend. The local
// checker normally answers this; the remote variant exists for parity
// with the backend contract.
func (c *Client) CheckConflict(ctx context.Context, candidate *domain.Course, schedule []*domain.Course) (*ConflictCheck, error) {
	body := struct {
		NewCourse       coursePayload   `json:"new_course"`
		CurrentSchedule []coursePayload `json:"current_schedule"`
	}{
		NewCourse:       toCoursePayload(candidate),
		CurrentSchedule: make([]coursePayload, 0, len(schedule)),
	}
	for _, s := range schedule {
		body.CurrentSchedule = append(body.CurrentSchedule, toCoursePayload(s))
	}

	var result ConflictCheck
	if err := c.call(ctx, "check_conflict", http.MethodPost, "/api/check-conflict", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GeneratePath asks the roadmap generator for a multi-semester plan.
func (c *Client) GeneratePath(ctx context.Context, req PathRequest) (*Plan, error) {
	body := struct {
		Username        string          `json:"username"`
		PassedCourses   []string        `json:"passed_courses"`
		CurrentSchedule []coursePayload `json:"current_schedule"`
		Strategy        string          `json:"strategy"`
	}{
		Username:        req.RollNumber,
		PassedCourses:   req.PassedCourseIDs,
		CurrentSchedule: make([]coursePayload, 0, len(req.Schedule)),
		Strategy:        string(req.Strategy),
	}
	for _, s := range req.Schedule {
		body.CurrentSchedule = append(body.CurrentSchedule, toCoursePayload(s))
	}

	var semesters []SemesterPlan
	if err := c.call(ctx, "generate_path", http.MethodPost, "/api/generate-path", body, &semesters); err != nil {
		return nil, err
	}
	return &Plan{Strategy: req.Strategy, Semesters: semesters}, nil
}

// Register submits a registration. A success=false answer maps to
// ErrRejected wrapping the server message.
func (c *Client) Register(ctx context.Context, reg Registration) error {
	body := struct {
		Username      string   `json:"username"`
		Courses       []string `json:"courses"`
		SemesterLabel string   `json:"semester_label"`
	}{
		Username:      reg.RollNumber,
		Courses:       reg.CourseIDs,
		SemesterLabel: reg.SemesterLabel,
	}

	var result struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := c.call(ctx, "register", http.MethodPost, "/api/student/register", body, &result); err != nil {
		return err
	}
	if !result.Success {
		msg := result.Message
		if msg == "" {
			msg = "registration refused"
		}
		return fmt.Errorf("%w: %s", ErrRejected, msg)
	}
	return nil
}

// Available checks whether the backend is reachable.
func (c *Client) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.Endpoint+"/api/courses", nil)
	if err != nil {
		return false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// call performs one JSON request/response round trip and reports the
// outcome to the observer.
func (c *Client) call(ctx context.Context, op, method, path string, body, out any) error {
	start := time.Now()

	timeout := time.Duration(c.cfg.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := c.doRequest(ctx, method, path, body, out)
	latency := time.Since(start).Milliseconds()

	if err == nil {
		c.observer.OnCallComplete(CallEvent{Operation: op, LatencyMs: latency, Success: true})
		return nil
	}

	if ctx.Err() != nil {
		err = ErrTimeout
	} else if isConnectionError(err) {
		err = ErrUnavailable
	}
	c.observer.OnCallComplete(CallEvent{
		Operation: op,
		LatencyMs: latency,
		Success:   false,
		ErrorCode: errorCode(err),
	})
	return err
}

func (c *Client) doRequest(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.cfg.Endpoint+path, reader)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: backend returned status %d: %s",
			ErrUnavailable, httpResp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrTimeout):
		return "TIMEOUT"
	case errors.Is(err, ErrUnavailable):
		return "UNAVAILABLE"
	case errors.Is(err, ErrRejected):
		return "REJECTED"
	case errors.Is(err, ErrInvalidResponse):
		return "INVALID_RESPONSE"
	default:
		return "UNKNOWN"
	}
}
