package verify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"purlhub/waypost/pkg/purl/ast"
	"purlhub/waypost/pkg/purl/compiler"
	"purlhub/waypost/pkg/purl/htaccess"
)

// DefaultTimeout bounds each individual redirect check.
const DefaultTimeout = 10 * time.Second

// Check is the outcome of one redirect test.
type Check struct {
	Rule       *ast.Rule // Rule the test belongs to
	From       string    // Requested path
	WantTo     string    // Expected Location header
	GotTo      string    // Observed Location header
	WantStatus int       // Expected redirect status code
	GotStatus  int       // Observed status code
	Err        error     // Transport failure, if the request never completed
}

// Passed reports whether the observed redirect matches the expectation.
func (c *Check) Passed() bool {
	return c.Err == nil && c.GotStatus == c.WantStatus && c.GotTo == c.WantTo
}

// String renders the check as a one-line pass/fail summary.
func (c *Check) String() string {
	if c.Passed() {
		return fmt.Sprintf("PASS %s -> %s (%d)", c.From, c.GotTo, c.GotStatus)
	}
	if c.Err != nil {
		return fmt.Sprintf("FAIL %s: %v", c.From, c.Err)
	}
	return fmt.Sprintf("FAIL %s: got %d %q, want %d %q",
		c.From, c.GotStatus, c.GotTo, c.WantStatus, c.WantTo)
}

// Report collects the checks of one verification run.
type Report struct {
	RunID    string   // Unique id for correlating logs of this run
	Server   string   // Server the checks ran against
	Document string   // Rule document the tests came from
	Checks   []*Check // One entry per redirect test, in document order
}

// Passed returns the number of passing checks.
func (r *Report) Passed() int {
	count := 0
	for _, c := range r.Checks {
		if c.Passed() {
			count++
		}
	}
	return count
}

// Failed returns the checks that did not pass.
func (r *Report) Failed() []*Check {
	var failed []*Check
	for _, c := range r.Checks {
		if !c.Passed() {
			failed = append(failed, c)
		}
	}
	return failed
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	return len(r.Failed()) == 0
}

// Summary renders a one-line result count.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d/%d checks passed", r.Passed(), len(r.Checks))
}

// Verifier runs redirect tests against one server.
type Verifier struct {
	client *resty.Client
	server string
}

// New creates a verifier for the given server base URL, e.g.
// "https://purl.obolibrary.org". Automatic redirect following is disabled
// so the first hop can be inspected.
func New(server string) *Verifier {
	client := resty.New().
		SetBaseURL(server).
		SetTimeout(DefaultTimeout).
		SetHeader("User-Agent", "waypost-verify")

	// Keep the raw 3xx response instead of chasing it
	client.GetClient().CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	return &Verifier{
		client: client,
		server: server,
	}
}

// WithTimeout sets the per-request timeout.
func (v *Verifier) WithTimeout(timeout time.Duration) *Verifier {
	v.client.SetTimeout(timeout)
	return v
}

// Run executes every redirect test in the document, sequentially and in
// document order. Rules without tests are skipped. A rule that fails
// validation aborts the run: its tests could not say anything meaningful.
// Transport failures do not abort the run; they fail the single check.
func (v *Verifier) Run(ctx context.Context, doc *ast.Document) (*Report, error) {
	namespace := htaccess.Namespace(doc.SourceFile)
	project := compiler.New(compiler.ModeProject, namespace)
	top := compiler.New(compiler.ModeTop, namespace)

	report := &Report{
		RunID:    uuid.New().String(),
		Server:   v.server,
		Document: doc.SourceFile,
	}

	for _, rule := range doc.Rules {
		if !rule.HasTests() {
			continue
		}

		// Exactly one pass emits a valid rule; ask project first
		directive, err := project.Compile(rule)
		if err != nil {
			return nil, err
		}
		if directive == nil {
			directive, err = top.Compile(rule)
			if err != nil {
				return nil, err
			}
		}
		if directive == nil {
			continue
		}

		wantStatus := directive.Status.HTTPStatus()
		for _, test := range rule.Tests {
			check := &Check{
				Rule:       rule,
				From:       test.From,
				WantTo:     test.To,
				WantStatus: wantStatus,
			}

			resp, err := v.client.R().SetContext(ctx).Get(test.From)
			if err != nil {
				check.Err = err
			} else {
				check.GotStatus = resp.StatusCode()
				check.GotTo = resp.Header().Get("Location")
			}

			report.Checks = append(report.Checks, check)
		}
	}

	return report, nil
}
