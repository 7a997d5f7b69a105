package mock

import (
	"context"

	"github.com/sitedex/sitedex"
)

var _ sitedex.Frontier = (*Frontier)(nil)

// Frontier is a mock implementation of sitedex.Frontier.
type Frontier struct {
	SeedFn         func(rawURL string) error
	TryClaimFn     func() (string, bool)
	AdmitFn        func(rawURL string) bool
	DoneFn         func(url string)
	IsExhaustedFn  func() bool
	VisitedCountFn func() int
}

func (f *Frontier) Seed(rawURL string) error {
	return f.SeedFn(rawURL)
}

func (f *Frontier) TryClaim() (string, bool) {
	return f.TryClaimFn()
}

func (f *Frontier) Admit(rawURL string) bool {
	return f.AdmitFn(rawURL)
}

func (f *Frontier) Done(url string) {
	f.DoneFn(url)
}

func (f *Frontier) IsExhausted() bool {
	return f.IsExhaustedFn()
}

func (f *Frontier) VisitedCount() int {
	return f.VisitedCountFn()
}

var _ sitedex.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of sitedex.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
