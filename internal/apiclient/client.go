// Package apiclient calls the attendance HTTP API and unwraps its response
// envelope.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/priyanshu-101/cb-app-user/internal/attendance"
	"github.com/priyanshu-101/cb-app-user/internal/auth"
	"github.com/priyanshu-101/cb-app-user/internal/capture"
	"github.com/priyanshu-101/cb-app-user/internal/employee"
	"github.com/priyanshu-101/cb-app-user/internal/holiday"
	"github.com/priyanshu-101/cb-app-user/internal/leave"
	"github.com/priyanshu-101/cb-app-user/internal/notice"
	"github.com/priyanshu-101/cb-app-user/internal/salary"
	"github.com/priyanshu-101/cb-app-user/internal/site"
)

const DefaultTimeout = 15 * time.Second

// Error is a non-ok envelope or a non-2xx response.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("api: status %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status %d %s: %s", e.Status, e.Code, e.Message)
}

type envelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// New returns a client for baseURL. A zero timeout means DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) buildURL(path string, query url.Values) string {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.buildURL(path, query), body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= 300 {
			return &Error{Status: resp.StatusCode, Message: strings.TrimSpace(string(raw))}
		}
		return fmt.Errorf("%s %s: decode envelope: %w", method, path, err)
	}
	if !env.Ok || resp.StatusCode >= 300 {
		apiErr := &Error{Status: resp.StatusCode}
		if env.Error != nil {
			apiErr.Code = env.Error.Code
			apiErr.Message = env.Error.Message
		}
		return apiErr
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, "", out)
}

func (c *Client) postJSON(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, path, nil, bytes.NewReader(body), "application/json", out)
}

func idPath(prefix, id string) string {
	return prefix + "/" + url.PathEscape(id)
}

func (c *Client) Login(ctx context.Context, email, password string) (auth.LoginResponse, error) {
	var out auth.LoginResponse
	err := c.postJSON(ctx, "/Login", auth.LoginRequest{Email: email, Password: password}, &out)
	return out, err
}

func (c *Client) Profile(ctx context.Context, employeeID string) (employee.ProfileResponse, error) {
	var out employee.ProfileResponse
	err := c.getJSON(ctx, idPath("/Profile", employeeID), nil, &out)
	return out, err
}

func (c *Client) Employee(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	var out employee.EmployeeResponse
	err := c.getJSON(ctx, idPath("/employee", employeeID), nil, &out)
	return out, err
}

func (c *Client) Salary(ctx context.Context, employeeID string) ([]salary.SalaryResponse, error) {
	var out []salary.SalaryResponse
	err := c.getJSON(ctx, idPath("/Salary", employeeID), nil, &out)
	return out, err
}

func (c *Client) Holidays(ctx context.Context, employeeID string) ([]holiday.HolidayResponse, error) {
	var out []holiday.HolidayResponse
	err := c.getJSON(ctx, idPath("/HolidayList", employeeID), nil, &out)
	return out, err
}

func (c *Client) Notices(ctx context.Context, employeeID string) ([]notice.NoticeResponse, error) {
	var out []notice.NoticeResponse
	err := c.getJSON(ctx, idPath("/Notice", employeeID), nil, &out)
	return out, err
}

func (c *Client) Sites(ctx context.Context, employeeID string) ([]site.Site, error) {
	var out []site.Site
	err := c.getJSON(ctx, idPath("/Camera", employeeID), nil, &out)
	return out, err
}

func (c *Client) MarkAttendance(ctx context.Context, employeeID string, rec capture.AttendanceRecord) error {
	return c.postJSON(ctx, idPath("/Camera", employeeID), rec, nil)
}

// ApplyLeave posts a multipart form. attachment may be nil.
func (c *Client) ApplyLeave(ctx context.Context, employeeID, reason, employeeName string, attachment *leave.Attachment) (leave.ApplyLeaveResponse, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("reason", reason); err != nil {
		return leave.ApplyLeaveResponse{}, err
	}
	if err := w.WriteField("employee_name", employeeName); err != nil {
		return leave.ApplyLeaveResponse{}, err
	}
	if attachment != nil {
		part, err := w.CreateFormFile("attachment", attachment.Filename)
		if err != nil {
			return leave.ApplyLeaveResponse{}, err
		}
		if _, err := io.Copy(part, attachment.Body); err != nil {
			return leave.ApplyLeaveResponse{}, err
		}
	}
	if err := w.Close(); err != nil {
		return leave.ApplyLeaveResponse{}, err
	}

	var out leave.ApplyLeaveResponse
	err := c.do(ctx, http.MethodPost, idPath("/Application", employeeID), nil, &buf, w.FormDataContentType(), &out)
	return out, err
}

// ViewAttendance lists the employee's rows for status ("Present" or
// "On Leave"). Exactly one of the returned slices is filled.
func (c *Client) ViewAttendance(ctx context.Context, employeeName, status string) ([]attendance.AttendanceResponse, []leave.LeaveResponse, error) {
	query := url.Values{"status": {status}}
	path := idPath("/ViewAtt", employeeName)
	if status == attendance.StatusOnLeave {
		var out []leave.LeaveResponse
		err := c.getJSON(ctx, path, query, &out)
		return nil, out, err
	}
	var out []attendance.AttendanceResponse
	err := c.getJSON(ctx, path, query, &out)
	return out, nil, err
}

// EmployeeName and SiteNames let the client act as a capture.Directory.

func (c *Client) EmployeeName(ctx context.Context, employeeID string) (string, error) {
	e, err := c.Employee(ctx, employeeID)
	return e.EmployeeName, err
}

func (c *Client) SiteNames(ctx context.Context, employeeID string) ([]string, error) {
	sites, err := c.Sites(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(sites))
	for i, s := range sites {
		names[i] = s.Name
	}
	return names, nil
}

var (
	_ capture.AttendanceUploader = (*Client)(nil)
	_ capture.Directory          = (*Client)(nil)
)
