package contactform

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/aehsummit/site/pkg/contact"
)

// DefaultResetDelay is how long the success state is shown before the form
// resets and closes.
const DefaultResetDelay = 2 * time.Second

// Form is one contact dialog. It is safe for concurrent use.
type Form struct {
	endpoint   string
	client     *http.Client
	resetDelay time.Duration
	onChange   func(State)

	mu         sync.Mutex
	state      State
	open       bool
	fields     contact.Submission
	lastID     string
	resetTimer *time.Timer
	generation uint64
}

type Option func(*Form)

func WithHTTPClient(c *http.Client) Option {
	return func(f *Form) {
		if c != nil {
			f.client = c
		}
	}
}

func WithResetDelay(d time.Duration) Option {
	return func(f *Form) {
		if d > 0 {
			f.resetDelay = d
		}
	}
}

// WithOnChange registers a callback for every state transition. It is called
// without the form lock held, so it may read the form.
func WithOnChange(fn func(State)) Option {
	return func(f *Form) {
		f.onChange = fn
	}
}

// New creates a closed, idle form posting to endpoint.
func New(endpoint string, opts ...Option) *Form {
	f := &Form{
		endpoint:   endpoint,
		client:     &http.Client{Timeout: 30 * time.Second},
		resetDelay: DefaultResetDelay,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Form) Open() {
	f.mu.Lock()
	f.open = true
	f.mu.Unlock()
}

// Close hides the form. An in-flight submission keeps running.
func (f *Form) Close() {
	f.mu.Lock()
	f.open = false
	f.mu.Unlock()
}

func (f *Form) IsOpen() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Fields returns the current field values; empty after a successful submission.
func (f *Form) Fields() contact.Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}

// SetFields replaces the field values without submitting.
func (f *Form) SetFields(s contact.Submission) {
	f.mu.Lock()
	f.fields = s
	f.mu.Unlock()
}

// LastID returns the message id of the last successful submission.
func (f *Form) LastID() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastID
}

// Submit sends fields to the endpoint and blocks until the server answers.
//
// Only one submission may be in flight; a second call returns
// ErrSubmitInProgress. Incomplete fields return a *contact.ValidationError
// without any request. Any non-200 answer or transport failure leaves the
// form in StateError with the fields kept and returns ErrSubmitFailed.
func (f *Form) Submit(ctx context.Context, fields contact.Submission) error {
	f.mu.Lock()
	if f.state == StateSubmitting {
		f.mu.Unlock()
		return ErrSubmitInProgress
	}
	f.fields = fields
	if err := contact.Validate(fields); err != nil {
		f.mu.Unlock()
		return err
	}
	f.cancelReset()
	f.state = StateSubmitting
	f.mu.Unlock()
	f.notify(StateSubmitting)

	id, err := f.post(ctx, fields)

	f.mu.Lock()
	if err != nil {
		f.state = StateError
		f.mu.Unlock()
		f.notify(StateError)
		return fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	f.state = StateSuccess
	f.fields = contact.Submission{}
	f.lastID = id
	gen := f.generation
	f.resetTimer = time.AfterFunc(f.resetDelay, func() { f.reset(gen) })
	f.mu.Unlock()
	f.notify(StateSuccess)
	return nil
}

// reset returns a successful form to idle and closes it, unless another
// submission started since the timer was armed.
func (f *Form) reset(gen uint64) {
	f.mu.Lock()
	if f.generation != gen || f.state != StateSuccess {
		f.mu.Unlock()
		return
	}
	f.state = StateIdle
	f.open = false
	f.resetTimer = nil
	f.mu.Unlock()
	f.notify(StateIdle)
}

// cancelReset must be called with mu held.
func (f *Form) cancelReset() {
	f.generation++
	if f.resetTimer != nil {
		f.resetTimer.Stop()
		f.resetTimer = nil
	}
}

func (f *Form) notify(s State) {
	if f.onChange != nil {
		f.onChange(s)
	}
}

type response struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
	Error   string `json:"error"`
}

func (f *Form) post(ctx context.Context, fields contact.Submission) (string, error) {
	body, err := json.Marshal(fields)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, f.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var out response
	decodeErr := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&out)
	if resp.StatusCode != http.StatusOK {
		if out.Error != "" {
			return "", fmt.Errorf("status %d: %s", resp.StatusCode, out.Error)
		}
		return "", fmt.Errorf("status %d", resp.StatusCode)
	}
	if decodeErr != nil {
		return "", fmt.Errorf("decode response: %w", decodeErr)
	}
	if !out.Success {
		return "", errors.New("server did not confirm delivery")
	}
	return out.ID, nil
}
