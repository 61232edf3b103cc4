package security

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	v1 "github.com/acquisitions-lab/acquisitions/internal/api/v1"
)

// Reason names the rule that denied a request.
type Reason string

const (
	ReasonBot       Reason = "bot"
	ReasonShield    Reason = "shield"
	ReasonRateLimit Reason = "rate_limit"
)

type Decision struct {
	Denied bool
	Reason Reason
}

// Request is the part of an HTTP request the guard looks at.
type Request struct {
	IP        string
	UserAgent string
	Method    string
	Path      string
	RawQuery  string
	Role      v1.Role
}

// Decider judges a request. An error means no decision could be made.
type Decider interface {
	Decide(ctx context.Context, req Request) (Decision, error)
}

// Policy configures RuleDecider.
type Policy struct {
	BlockedUserAgents []string
	Window            time.Duration
	Limits            map[v1.Role]int
}

var shieldMarkers = []string{
	"../",
	"..\\",
	"%2e%2e",
	"<script",
	"javascript:",
	"onerror=",
	"union select",
	"/etc/passwd",
}

// RuleDecider checks, in order, the user agent, the shield markers and the role's rate limit.
type RuleDecider struct {
	blocked []string
	window  time.Duration
	limits  map[v1.Role]int
	limiter Limiter
}

func NewDecider(policy Policy, limiter Limiter) *RuleDecider {
	blocked := make([]string, 0, len(policy.BlockedUserAgents))
	for _, ua := range policy.BlockedUserAgents {
		if ua = strings.ToLower(strings.TrimSpace(ua)); ua != "" {
			blocked = append(blocked, ua)
		}
	}
	return &RuleDecider{
		blocked: blocked,
		window:  policy.Window,
		limits:  policy.Limits,
		limiter: limiter,
	}
}

func (d *RuleDecider) Decide(ctx context.Context, req Request) (Decision, error) {
	if d.isBot(req.UserAgent) {
		return Decision{Denied: true, Reason: ReasonBot}, nil
	}
	if isShielded(req.Path, req.RawQuery) {
		return Decision{Denied: true, Reason: ReasonShield}, nil
	}

	role := req.Role
	if role == "" {
		role = v1.RoleGuest
	}
	limit, ok := d.limits[role]
	if !ok {
		limit = d.limits[v1.RoleGuest]
	}

	allowed, err := d.limiter.Allow(ctx, string(role)+":"+req.IP, limit, d.window)
	if err != nil {
		return Decision{}, fmt.Errorf("rate limiter failed: %w", err)
	}
	if !allowed {
		return Decision{Denied: true, Reason: ReasonRateLimit}, nil
	}
	return Decision{}, nil
}

// An empty user agent counts as automated.
func (d *RuleDecider) isBot(userAgent string) bool {
	ua := strings.ToLower(strings.TrimSpace(userAgent))
	if ua == "" {
		return true
	}
	for _, marker := range d.blocked {
		if strings.Contains(ua, marker) {
			return true
		}
	}
	return false
}

func isShielded(path, rawQuery string) bool {
	candidates := []string{strings.ToLower(path), strings.ToLower(rawQuery)}
	if unescaped, err := url.QueryUnescape(rawQuery); err == nil {
		candidates = append(candidates, strings.ToLower(unescaped))
	}
	for _, s := range candidates {
		for _, marker := range shieldMarkers {
			if strings.Contains(s, marker) {
				return true
			}
		}
	}
	return false
}
