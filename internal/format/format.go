// Package format holds presentation helpers consumed by the dashboard
// layer. They are stateless and forgiving: malformed input is passed
// through unchanged rather than validated.
package format

import (
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"pharmatrack/internal/model"
)

const dateLayout = "Jan 02, 2006"

// Date renders a calendar date for display. The zero time renders empty.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// DateString formats an RFC 3339 or yyyy-mm-dd date string. Anything it
// cannot parse comes back unchanged.
func DateString(s string) string {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return Date(t)
		}
	}
	return s
}

// Currency renders an amount as dollars with thousands separators,
// e.g. 1234.5 -> "$1,234.50".
func Currency(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := "$" + b.String() + "." + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

var statusClasses = map[model.OrderStatus]string{
	model.OrderStatusPending:   "badge-warning",
	model.OrderStatusApproved:  "badge-info",
	model.OrderStatusOrdered:   "badge-info",
	model.OrderStatusShipped:   "badge-primary",
	model.OrderStatusDelivered: "badge-success",
	model.OrderStatusCancelled: "badge-danger",
}

// StatusClass maps an order status to its display badge class. Unknown
// statuses fall back to a neutral badge.
func StatusClass(status model.OrderStatus) string {
	if class, ok := statusClasses[status]; ok {
		return class
	}
	return "badge-secondary"
}

// Debouncer coalesces a burst of calls into one, firing the last supplied
// function once the delay elapses without another call. Used for search
// input.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

func (d *Debouncer) Do(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels any pending invocation.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
