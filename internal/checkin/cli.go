// Package checkin is the command-line attendance check-in: it runs the
// capture session against the API with a still image standing in for the
// camera.
package checkin

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/priyanshu-101/cb-app-user/internal/apiclient"
	"github.com/priyanshu-101/cb-app-user/internal/capture"

	"go.uber.org/zap"
)

var ErrCheckinFailed = errors.New("check-in failed")

type writerNotifier struct {
	out io.Writer
}

func (n writerNotifier) Alert(message string) {
	fmt.Fprintln(n.out, message)
}

// Execute parses args, loads the profile and runs one check-in.
func Execute(ctx context.Context, args []string, out io.Writer, logger *zap.Logger) error {
	fs := flag.NewFlagSet("checkin", flag.ContinueOnError)
	fs.SetOutput(out)
	configPath := fs.String("config", "", "path to YAML profile")
	baseURL := fs.String("base-url", "", "API base URL (overrides profile)")
	employeeID := fs.String("employee", "", "employee id (overrides profile)")
	framePath := fs.String("frame", "", "jpeg, png or webp used as the camera frame (overrides profile)")
	site := fs.String("site", "", "site name; unknown names are sent as Other (overrides profile)")
	timeout := fs.Duration("timeout", 0, "HTTP timeout (overrides profile)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	p, err := LoadProfile(*configPath)
	if err != nil {
		return err
	}
	if *baseURL != "" {
		p.BaseURL = *baseURL
	}
	if *employeeID != "" {
		p.EmployeeID = *employeeID
	}
	if *framePath != "" {
		p.FramePath = *framePath
	}
	if *site != "" {
		p.Site = *site
	}
	if *timeout > 0 {
		p.Timeout = *timeout
	}
	if err := p.Validate(); err != nil {
		return err
	}

	return Run(ctx, p, out, logger)
}

// Run walks the capture session from Idle to Captured for p.
func Run(ctx context.Context, p Profile, out io.Writer, logger *zap.Logger) error {
	client := apiclient.New(p.BaseURL, p.Timeout)
	session := capture.NewSession(p.EmployeeID, capture.Deps{
		Camera:    capture.NewFileCamera(p.FramePath),
		Uploader:  client,
		Notifier:  writerNotifier{out: out},
		Directory: client,
		Now:       time.Now,
	}, logger)

	session.Load(ctx)
	view := session.View()
	if view.EmployeeName == "" {
		return fmt.Errorf("%w: employee %s not found", ErrCheckinFailed, p.EmployeeID)
	}
	fmt.Fprintf(out, "Employee: %s\n", view.EmployeeName)

	if err := session.Begin(); err != nil {
		return err
	}
	var err error
	if slices.Contains(view.Sites, p.Site) {
		err = session.SelectSite(ctx, p.Site)
	} else {
		if err = session.SelectSite(ctx, capture.SiteOther); err == nil {
			err = session.SubmitCustomSite(ctx, p.Site)
		}
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Site: %s\n", session.View().SiteValue())

	if err := session.Capture(ctx); err != nil {
		session.Back()
		return fmt.Errorf("%w: %v", ErrCheckinFailed, err)
	}
	session.Wait()

	view = session.View()
	if view.State != capture.Captured {
		session.Back()
		return fmt.Errorf("%w: camera did not start", ErrCheckinFailed)
	}
	if view.LastAlert == capture.AlertFailed {
		return ErrCheckinFailed
	}
	return nil
}
