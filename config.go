package depot

import "go.uber.org/zap"

// Config holds global configuration for the depot package. Configure it
// before constructing Storages and Runners.
var Config = config{
	logger:     zap.NewNop(),
	membership: PermissiveMembership{},
}

type config struct {
	strictRegistration bool
	logger             *zap.Logger
	membership         Membership
}

// SetStrictRegistration makes Storage.Insert fail with
// DuplicateComponentTypeError instead of replacing an existing array.
func (c *config) SetStrictRegistration(strict bool) {
	c.strictRegistration = strict
}

// SetLogger configures the logger handed to new Runners.
func (c *config) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	c.logger = l
}

// SetMembership configures the membership policy for new Storages.
func (c *config) SetMembership(m Membership) {
	if m == nil {
		m = PermissiveMembership{}
	}
	c.membership = m
}
