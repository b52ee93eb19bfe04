// Package capture drives the photo check-in screen: pick a site, open the
// camera, take one frame and upload it as today's attendance.
package capture

import (
	"context"
	"errors"
	"image"
	"time"
)

// SiteOther is the picker entry that reveals free-text site input.
const SiteOther = "Other"

// NavProfile is the screen Back returns to.
const NavProfile = "Profile"

const (
	AlertMarked = "Attendance marked successfully!"
	AlertFailed = "Failed to mark attendance."
)

var (
	ErrInvalidTransition = errors.New("capture: invalid transition")
	ErrEmptySite         = errors.New("capture: site is empty")
)

type Camera interface {
	StartCapture(ctx context.Context) error
	CaptureFrame(ctx context.Context) (image.Image, error)
	Release() error
}

// AttendanceRecord is the body of POST /Camera/:id.
type AttendanceRecord struct {
	EmployeeName   string `json:"employee_name"`
	EmployeePhoto  string `json:"employee_photo"`
	AttendanceDate string `json:"attendance_date"`
	AttendanceTime string `json:"attendance_time"`
	City           string `json:"city"`
}

type AttendanceUploader interface {
	MarkAttendance(ctx context.Context, employeeID string, rec AttendanceRecord) error
}

// Directory reads the data the screen shows before capture.
type Directory interface {
	EmployeeName(ctx context.Context, employeeID string) (string, error)
	SiteNames(ctx context.Context, employeeID string) ([]string, error)
}

// Notifier shows a blocking alert to the user.
type Notifier interface {
	Alert(message string)
}

type State int

const (
	Idle State = iota
	SiteSelection
	CameraActive
	Captured
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case SiteSelection:
		return "SiteSelection"
	case CameraActive:
		return "CameraActive"
	case Captured:
		return "Captured"
	default:
		return "Unknown"
	}
}

// View is everything the screen renders. PhotoURI and CapturedAt are set
// only in Captured.
type View struct {
	State             State
	EmployeeName      string
	Sites             []string
	Site              string
	CustomSiteVisible bool
	CustomSite        string
	PhotoURI          string
	CapturedAt        time.Time
	LastAlert         string
}

// SiteValue is the site sent with the upload.
func (v View) SiteValue() string {
	if v.Site != "" {
		return v.Site
	}
	return v.CustomSite
}
