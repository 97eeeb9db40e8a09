package http

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// Opt configures a *resty.Client.
type Opt func(*resty.Client)

// New creates a resty client with the given base URL and options.
func New(baseURL string, opts ...Opt) *resty.Client {
	client := resty.New().SetBaseURL(baseURL)
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// RetryPolicy describes HTTP request retry behavior.
type RetryPolicy struct {
	Count   int           // Number of retry attempts
	Wait    time.Duration // Wait time between retries
	MaxWait time.Duration // Maximum wait time across retries
}

// WithRetryPolicy applies the first policy that has at least one positive
// field. With no valid policy the client is left unchanged.
func WithRetryPolicy(policies ...RetryPolicy) Opt {
	return func(c *resty.Client) {
		for _, policy := range policies {
			if policy.Count <= 0 && policy.Wait <= 0 && policy.MaxWait <= 0 {
				continue
			}
			if policy.Count > 0 {
				c.SetRetryCount(policy.Count)
			}
			if policy.Wait > 0 {
				c.SetRetryWaitTime(policy.Wait)
			}
			if policy.MaxWait > 0 {
				c.SetRetryMaxWaitTime(policy.MaxWait)
			}
			break
		}
	}
}

// WithTimeout sets the overall request timeout to the first positive value.
func WithTimeout(timeouts ...time.Duration) Opt {
	return func(c *resty.Client) {
		for _, timeout := range timeouts {
			if timeout > 0 {
				c.SetTimeout(timeout)
				break
			}
		}
	}
}
