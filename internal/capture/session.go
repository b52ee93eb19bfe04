package capture

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Deps struct {
	Camera    Camera
	Uploader  AttendanceUploader
	Notifier  Notifier
	Directory Directory
	// Now defaults to time.Now.
	Now func() time.Time
}

// Session owns one pass through the check-in screen. Methods are safe for
// concurrent use.
type Session struct {
	employeeID string
	deps       Deps
	logger     *zap.Logger

	mu        sync.Mutex
	view      View
	streaming bool
	release   *sync.Once
	uploads   sync.WaitGroup
}

func NewSession(employeeID string, deps Deps, logger ...*zap.Logger) *Session {
	l := zap.L().Named("capture.session")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("capture.session")
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	return &Session{employeeID: employeeID, deps: deps, logger: l}
}

// View returns a snapshot of the screen state.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.view
	v.Sites = append([]string(nil), s.view.Sites...)
	return v
}

// Load fills in the employee name and the site list. Either lookup may fail
// on its own; the field then stays empty.
func (s *Session) Load(ctx context.Context) {
	if s.deps.Directory == nil {
		return
	}

	name, err := s.deps.Directory.EmployeeName(ctx, s.employeeID)
	if err != nil {
		s.logger.Error("fetch employee name failed", zap.String("employee_id", s.employeeID), zap.Error(err))
	}
	sites, err := s.deps.Directory.SiteNames(ctx, s.employeeID)
	if err != nil {
		s.logger.Error("fetch sites failed", zap.String("employee_id", s.employeeID), zap.Error(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if name != "" {
		s.view.EmployeeName = name
	}
	if sites != nil {
		s.view.Sites = sites
	}
}

// Begin opens the site picker.
func (s *Session) Begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view.State != Idle {
		return fmt.Errorf("%w: begin from %s", ErrInvalidTransition, s.view.State)
	}
	s.view.State = SiteSelection
	return nil
}

// SelectSite picks a site from the list. SiteOther shows the free-text input
// instead of opening the camera.
func (s *Session) SelectSite(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view.State != SiteSelection {
		return fmt.Errorf("%w: select site from %s", ErrInvalidTransition, s.view.State)
	}
	if name == "" {
		return ErrEmptySite
	}

	if name == SiteOther {
		s.view.CustomSiteVisible = true
		s.view.Site = ""
		return nil
	}

	s.view.Site = name
	s.view.CustomSiteVisible = false
	s.openCameraLocked(ctx)
	return nil
}

// SubmitCustomSite confirms the free-text site and opens the camera.
func (s *Session) SubmitCustomSite(ctx context.Context, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view.State != SiteSelection || !s.view.CustomSiteVisible {
		return fmt.Errorf("%w: submit custom site from %s", ErrInvalidTransition, s.view.State)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return ErrEmptySite
	}

	s.view.CustomSite = text
	s.openCameraLocked(ctx)
	return nil
}

// openCameraLocked moves to CameraActive even when the camera fails to
// start; Capture is then a no-op.
func (s *Session) openCameraLocked(ctx context.Context) {
	s.view.State = CameraActive
	if err := s.deps.Camera.StartCapture(ctx); err != nil {
		s.logger.Error("start camera failed", zap.Error(err))
		s.streaming = false
		return
	}
	s.streaming = true
	s.release = new(sync.Once)
}

func (s *Session) releaseCameraLocked() {
	if !s.streaming {
		return
	}
	s.streaming = false
	s.release.Do(func() {
		if err := s.deps.Camera.Release(); err != nil {
			s.logger.Warn("release camera failed", zap.Error(err))
		}
	})
}

// Capture takes one frame, stops the camera and uploads the attendance in
// the background. The session stays in Captured whatever the upload does.
func (s *Session) Capture(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view.State != CameraActive {
		return fmt.Errorf("%w: capture from %s", ErrInvalidTransition, s.view.State)
	}
	if !s.streaming {
		s.logger.Error("capture without an active camera stream")
		return nil
	}

	uri, err := s.grabLocked(ctx)
	s.releaseCameraLocked()
	if err != nil {
		s.logger.Error("capture photo failed", zap.Error(err))
		return err
	}

	now := s.deps.Now()
	s.view.State = Captured
	s.view.PhotoURI = uri
	s.view.CapturedAt = now

	// Date and time both come from the device's wall clock, so a check-in
	// just after local midnight lands on the new day.
	rec := AttendanceRecord{
		EmployeeName:   s.view.EmployeeName,
		EmployeePhoto:  uri,
		AttendanceDate: now.Format(time.DateOnly),
		AttendanceTime: now.Format(time.TimeOnly),
		City:           s.view.SiteValue(),
	}

	s.uploads.Add(1)
	go s.upload(context.WithoutCancel(ctx), rec)
	return nil
}

func (s *Session) grabLocked(ctx context.Context) (string, error) {
	frame, err := s.deps.Camera.CaptureFrame(ctx)
	if err != nil {
		return "", fmt.Errorf("capture frame: %w", err)
	}
	return EncodeDataURI(frame)
}

func (s *Session) upload(ctx context.Context, rec AttendanceRecord) {
	defer s.uploads.Done()

	alert := AlertMarked
	if err := s.deps.Uploader.MarkAttendance(ctx, s.employeeID, rec); err != nil {
		s.logger.Error("store attendance failed", zap.String("employee_id", s.employeeID), zap.Error(err))
		alert = AlertFailed
	}

	s.mu.Lock()
	s.view.LastAlert = alert
	s.mu.Unlock()

	if s.deps.Notifier != nil {
		s.deps.Notifier.Alert(alert)
	}
}

// Wait blocks until background uploads have finished.
func (s *Session) Wait() {
	s.uploads.Wait()
}

// Back releases the camera if held, resets the screen and returns the
// navigation target.
func (s *Session) Back() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.releaseCameraLocked()
	s.view = View{
		EmployeeName: s.view.EmployeeName,
		Sites:        s.view.Sites,
		LastAlert:    s.view.LastAlert,
	}
	return NavProfile
}
