// Package fetcher renders pages in headless Chrome so leaderboards built
// with client-side frameworks produce real table markup.
package fetcher

import (
	"context"
	"sync"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"github.com/rotisserie/eris"
)

// Options configures the fetcher behavior.
type Options struct {
	UserAgent  string
	ChromePath string // path to a Chrome binary (empty = auto-detect)
	Timeout    time.Duration
	Settle     time.Duration // extra wait after network idle for JS painting
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
		Timeout:   60 * time.Second,
		Settle:    3 * time.Second,
	}
}

// networkQuiet is how long the wire must stay silent before a page counts
// as network-idle.
const networkQuiet = 500 * time.Millisecond

// Fetcher renders pages with a fresh headless Chrome per call.
type Fetcher struct {
	opts Options
}

// New builds a Fetcher. Zero-valued fields in opts fall back to defaults.
func New(opts Options) *Fetcher {
	def := DefaultOptions()
	if opts.UserAgent == "" {
		opts.UserAgent = def.UserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = def.Timeout
	}
	if opts.Settle <= 0 {
		opts.Settle = def.Settle
	}
	return &Fetcher{opts: opts}
}

// Render navigates a fresh headless browser to targetURL, waits for
// network idle plus the settle delay, and returns the rendered HTML.
// The browser process is torn down before Render returns, on both the
// success and the error path.
func (f *Fetcher) Render(ctx context.Context, targetURL string) (string, error) {
	allocOpts := []chromedp.ExecAllocatorOption{
		chromedp.NoDefaultBrowserCheck,
		chromedp.NoFirstRun,
		chromedp.Flag("headless", "new"),
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("disable-default-apps", true),
		chromedp.Flag("disable-component-update", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-service-autorun", true),
		chromedp.UserAgent(f.opts.UserAgent),
		chromedp.WindowSize(1920, 1080),
	}
	if f.opts.ChromePath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(f.opts.ChromePath))
	}

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, allocOpts...)
	defer allocCancel()

	runCtx, cancel := context.WithTimeout(allocCtx, f.opts.Timeout)
	defer cancel()

	runCtx, cancel = chromedp.NewContext(runCtx)
	defer cancel()

	var html string
	err := chromedp.Run(runCtx,
		network.Enable(),
		chromedp.Navigate(targetURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
		waitNetworkIdle(networkQuiet),
		chromedp.Sleep(f.opts.Settle),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", eris.Wrapf(err, "rendering %s", targetURL)
	}
	return html, nil
}

// waitNetworkIdle blocks until no requests have been in flight for the
// quiet window, or the surrounding context deadline fires.
func waitNetworkIdle(quiet time.Duration) chromedp.ActionFunc {
	return func(ctx context.Context) error {
		var (
			mu       sync.Mutex
			inflight = map[network.RequestID]struct{}{}
		)
		activity := make(chan struct{}, 1)
		poke := func() {
			select {
			case activity <- struct{}{}:
			default:
			}
		}

		chromedp.ListenTarget(ctx, func(ev interface{}) {
			mu.Lock()
			defer mu.Unlock()
			switch e := ev.(type) {
			case *network.EventRequestWillBeSent:
				inflight[e.RequestID] = struct{}{}
			case *network.EventLoadingFinished:
				delete(inflight, e.RequestID)
			case *network.EventLoadingFailed:
				delete(inflight, e.RequestID)
			default:
				return
			}
			poke()
		})

		timer := time.NewTimer(quiet)
		defer timer.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-activity:
				// Wire activity restarts the quiet window.
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(quiet)
			case <-timer.C:
				mu.Lock()
				n := len(inflight)
				mu.Unlock()
				if n == 0 {
					return nil
				}
				// Requests still open and no events arriving; keep
				// waiting until they finish or the deadline fires.
				timer.Reset(quiet)
			}
		}
	}
}
