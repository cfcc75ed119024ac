package fetch

import (
	"context"

	"github.com/playwright-community/playwright-go"
)

const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	gotoTimeoutMs = 30000
)

// Browser is the playwright-backed Client. One launched Chromium serves all
// fetches; every Fetch runs in its own tab so concurrent site runs do not
// share page state.
type Browser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	bctx    playwright.BrowserContext
}

func NewBrowser() (*Browser, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, err
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, err
	}
	bctx, err := browser.NewContext(playwright.BrowserNewContextOptions{
		UserAgent: playwright.String(userAgent),
		Viewport:  &playwright.Size{Width: 1280, Height: 720},
		ExtraHttpHeaders: map[string]string{
			"Accept-Language": "en-US,en;q=0.9",
		},
	})
	if err != nil {
		_ = browser.Close()
		_ = pw.Stop()
		return nil, err
	}
	return &Browser{pw: pw, browser: browser, bctx: bctx}, nil
}

func (b *Browser) Fetch(ctx context.Context, url string, mode Mode) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	page, err := b.bctx.NewPage()
	if err != nil {
		return Result{}, err
	}
	defer page.Close()

	wait := playwright.WaitUntilStateDomcontentloaded
	if mode == WaitNetworkIdle {
		wait = playwright.WaitUntilStateNetworkidle
	}
	if _, err := page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: wait,
		Timeout:   playwright.Float(gotoTimeoutMs),
	}); err != nil {
		return Result{Success: false}, err
	}

	html, err := page.Content()
	if err != nil {
		return Result{Success: false}, err
	}
	return Result{Success: true, HTML: html}, nil
}

func (b *Browser) Close() error {
	if b.bctx != nil {
		_ = b.bctx.Close()
	}
	if b.browser != nil {
		_ = b.browser.Close()
	}
	if b.pw != nil {
		return b.pw.Stop()
	}
	return nil
}
