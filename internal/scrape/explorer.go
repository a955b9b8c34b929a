package scrape

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// ErrDomainGone marks explorers whose domain no longer resolves; the
// owning chain should be flagged dead.
var ErrDomainGone = errors.New("explorer domain does not resolve")

// Patterns for the metric labels common block explorers render.
var (
	tpsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)TPS[:\s]*([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?i)Transactions per second[:\s]*([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?i)([\d,]+\.?\d*)\s*TPS`),
	}
	txCountPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Total Transactions[:\s]*([\d,]+)`),
		regexp.MustCompile(`(?i)Transactions[:\s]*([\d,]+)`),
		regexp.MustCompile(`(?i)Total Txs[:\s]*([\d,]+)`),
		regexp.MustCompile(`(?i)(\d[\d,]*)\s*transactions`),
	}
)

// ExtractMetrics pulls TPS and total-transaction figures out of rendered
// explorer page text. Either figure may come back zero when no label
// matches.
func ExtractMetrics(text string) (tps, txCount float64) {
	for _, p := range tpsPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			if v := cleanNumber(m[1]); v > 0 {
				tps = v
				break
			}
		}
	}
	for _, p := range txCountPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			if v := cleanNumber(m[1]); v > 0 {
				txCount = v
				break
			}
		}
	}
	return tps, txCount
}

func cleanNumber(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(strings.ReplaceAll(s, ",", "")), 64)
	if err != nil {
		return 0
	}
	return f
}

// Explorer renders explorer pages in headless Chrome and extracts chain
// metrics that the RPC measurement could not produce.
type Explorer struct {
	timeout time.Duration
}

func NewExplorer() *Explorer {
	return &Explorer{timeout: 45 * time.Second}
}

// Fetch loads url and returns the extracted metrics. A DNS failure maps
// onto ErrDomainGone so callers can mark the chain dead.
func (e *Explorer) Fetch(ctx context.Context, url string) (tps, txCount float64, err error) {
	if !strings.HasPrefix(url, "http") {
		url = "https://" + url
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-crash-reporter", true),
		chromedp.Flag("crash-dumps-dir", "/tmp"),
		chromedp.UserDataDir("/tmp/chromedp-profile"),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	defer allocCancel()

	tabCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	tabCtx, cancel = context.WithTimeout(tabCtx, e.timeout)
	defer cancel()

	var text string
	err = chromedp.Run(tabCtx,
		chromedp.Navigate(url),
		chromedp.Sleep(3*time.Second), // let client-side rendering settle
		chromedp.Evaluate(`document.body ? document.body.innerText : ''`, &text),
	)
	if err != nil {
		if strings.Contains(err.Error(), "ERR_NAME_NOT_RESOLVED") {
			return 0, 0, ErrDomainGone
		}
		return 0, 0, err
	}

	tps, txCount = ExtractMetrics(text)
	return tps, txCount, nil
}
