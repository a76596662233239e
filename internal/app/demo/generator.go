// Package demo generates realistic sample log data for development and
// load testing. It is used only by the offline seeder command.
package demo

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/Atik203/Logs-Dashboard/internal/domain"
	"github.com/Atik203/Logs-Dashboard/internal/service/logs"
)

// messages holds realistic log lines per severity.
var messages = map[domain.Severity][]string{
	domain.SeverityDebug: {
		"Database query executed successfully",
		"User session initialized",
		"Cache hit for user preferences",
		"Processing request parameters",
		"Validating input data",
		"Loading configuration settings",
		"Establishing database connection",
		"Parsing request headers",
		"Starting background task",
	},
	domain.SeverityInfo: {
		"User login successful",
		"New user registration completed",
		"File upload completed",
		"Data export initiated",
		"System health check passed",
		"Scheduled task completed",
		"User logout processed",
		"Configuration updated",
		"Cache refresh completed",
		"Service started successfully",
		"API request processed",
		"Email notification sent",
		"Password reset requested",
		"Search query executed",
	},
	domain.SeverityWarning: {
		"High memory usage detected",
		"Slow database query performance",
		"API rate limit approaching",
		"Deprecated feature usage detected",
		"Unusual login pattern detected",
		"Cache miss rate increasing",
		"Disk space running low",
		"Connection timeout occurred",
		"Session expiring soon",
		"Retry attempt after failure",
		"Performance threshold exceeded",
	},
	domain.SeverityError: {
		"Database connection failed",
		"Authentication failed for user",
		"File upload error occurred",
		"Payment processing failed",
		"API request timeout",
		"Invalid credentials provided",
		"Service unavailable",
		"Data validation failed",
		"Network connection error",
		"Permission denied for operation",
		"Third-party service error",
		"Email delivery failed",
	},
	domain.SeverityCritical: {
		"System out of memory",
		"Database server unresponsive",
		"Security breach detected",
		"Service completely down",
		"Data corruption detected",
		"System overload - shutting down",
		"Hardware failure detected",
		"Backup system failure",
	},
}

// sources is a fixed pool of realistic service names.
var sources = []string{
	"auth_service",
	"user_management",
	"api_gateway",
	"database_service",
	"payment_processor",
	"email_service",
	"file_storage",
	"notification_service",
	"analytics_engine",
	"security_monitor",
	"web_server",
	"background_worker",
	"cache_service",
	"search_engine",
	"reporting_service",
	"backup_service",
	"monitoring_agent",
	"load_balancer",
	"cdn_service",
	"message_queue",
}

// severityWeights skews generation towards INFO/WARNING, with rare
// CRITICAL entries.
var severityWeights = []struct {
	severity domain.Severity
	weight   int
}{
	{domain.SeverityDebug, 20},
	{domain.SeverityInfo, 40},
	{domain.SeverityWarning, 25},
	{domain.SeverityError, 12},
	{domain.SeverityCritical, 3},
}

// Generator produces random log records reproducibly from a seed.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// NewGenerator creates a generator. The same seed yields the same sequence.
func NewGenerator(seed int64, now time.Time) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed)), now: now.UTC()}
}

// Generate returns n log creation inputs spread over the last 30 days,
// biased towards recent days.
func (g *Generator) Generate(n int) []logs.CreateInput {
	out := make([]logs.CreateInput, 0, n)
	for i := 0; i < n; i++ {
		severity := g.pickSeverity()
		msg := g.pick(messages[severity])
		if g.rng.Float64() < 0.3 {
			msg = fmt.Sprintf("%s - %s", msg, g.context())
		}

		ts := g.timestamp()
		out = append(out, logs.CreateInput{
			Timestamp: &ts,
			Message:   msg,
			Severity:  severity.String(),
			Source:    g.pick(sources),
		})
	}
	return out
}

func (g *Generator) pickSeverity() domain.Severity {
	total := 0
	for _, sw := range severityWeights {
		total += sw.weight
	}
	r := g.rng.Intn(total)
	for _, sw := range severityWeights {
		if r < sw.weight {
			return sw.severity
		}
		r -= sw.weight
	}
	return domain.SeverityInfo
}

// timestamp picks a moment within the last 30 days; day k ago has
// weight 30-k, so recent days dominate.
func (g *Generator) timestamp() time.Time {
	total := 0
	for d := 0; d < 30; d++ {
		total += 30 - d
	}
	r := g.rng.Intn(total)
	daysAgo := 0
	for d := 0; d < 30; d++ {
		if r < 30-d {
			daysAgo = d
			break
		}
		r -= 30 - d
	}

	return g.now.
		AddDate(0, 0, -daysAgo).
		Add(-time.Duration(g.rng.Intn(24)) * time.Hour).
		Add(-time.Duration(g.rng.Intn(60)) * time.Minute).
		Add(-time.Duration(g.rng.Intn(60)) * time.Second)
}

func (g *Generator) context() string {
	switch g.rng.Intn(6) {
	case 0:
		return fmt.Sprintf("User ID: %d", g.rng.Intn(1000)+1)
	case 1:
		return fmt.Sprintf("Session: %d", g.rng.Intn(90000)+10000)
	case 2:
		return fmt.Sprintf("Request ID: %d", g.rng.Intn(900000)+100000)
	case 3:
		return fmt.Sprintf("Duration: %dms", g.rng.Intn(4950)+50)
	case 4:
		return fmt.Sprintf("Memory: %dMB", g.rng.Intn(448)+64)
	default:
		return fmt.Sprintf("CPU: %d%%", g.rng.Intn(85)+10)
	}
}

func (g *Generator) pick(values []string) string {
	return values[g.rng.Intn(len(values))]
}
