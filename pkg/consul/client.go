// Package consul registers the ordering service with a Consul agent so it
// is discoverable next to the rest of the deployment. Registration is
// optional: it only happens when CONSUL_ENABLED is set.
package consul

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/consul/api"

	"chaibisket/pkg/logger"
)

type Client struct {
	client      *api.Client
	serviceName string
	servicePort int
	logger      *logger.Logger
}

// Enabled reports whether Consul registration was requested via environment.
func Enabled() bool {
	enabled, err := strconv.ParseBool(os.Getenv("CONSUL_ENABLED"))
	return err == nil && enabled
}

// NewClient creates a new Consul client from environment settings.
func NewClient(port int, log *logger.Logger) (*Client, error) {
	consulHost := os.Getenv("CONSUL_HOST")
	if consulHost == "" {
		consulHost = "localhost"
	}

	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "chaibisket"
	}

	config := api.DefaultConfig()
	config.Address = fmt.Sprintf("%s:8500", consulHost)

	client, err := api.NewClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create consul client: %v", err)
	}

	return &Client{
		client:      client,
		serviceName: serviceName,
		servicePort: port,
		logger:      log.WithComponent("consul"),
	}, nil
}

// RegisterService registers the service with Consul, with an HTTP health
// check against the service's own health endpoint.
func (c *Client) RegisterService() error {
	hostname, err := os.Hostname()
	if err != nil {
		return fmt.Errorf("failed to get hostname: %v", err)
	}

	registration := &api.AgentServiceRegistration{
		ID:      fmt.Sprintf("%s-%s", c.serviceName, hostname),
		Name:    c.serviceName,
		Port:    c.servicePort,
		Address: hostname,
		Check: &api.AgentServiceCheck{
			HTTP:                           fmt.Sprintf("http://%s:%d/api/v1/health", hostname, c.servicePort),
			Interval:                       "10s",
			Timeout:                        "3s",
			DeregisterCriticalServiceAfter: "30s",
		},
	}

	if err := c.client.Agent().ServiceRegister(registration); err != nil {
		return fmt.Errorf("failed to register service: %v", err)
	}

	c.logger.Info("Service registered with Consul",
		"service", c.serviceName,
		"address", hostname,
		"port", c.servicePort)
	return nil
}

// DeregisterService removes the service from Consul.
func (c *Client) DeregisterService() error {
	hostname, err := os.Hostname()
	if err != nil {
		return fmt.Errorf("failed to get hostname: %v", err)
	}

	serviceID := fmt.Sprintf("%s-%s", c.serviceName, hostname)
	if err := c.client.Agent().ServiceDeregister(serviceID); err != nil {
		return fmt.Errorf("failed to deregister service: %v", err)
	}

	c.logger.Info("Service deregistered from Consul", "service", c.serviceName)
	return nil
}

// WaitForConsul waits for the Consul agent to elect a leader.
func (c *Client) WaitForConsul(maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		if _, err := c.client.Status().Leader(); err == nil {
			c.logger.Info("Consul is available")
			return nil
		}

		c.logger.Warn("Waiting for Consul to be available",
			"attempt", i+1,
			"max_attempts", maxRetries)
		time.Sleep(2 * time.Second)
	}

	return fmt.Errorf("consul not available after %d retries", maxRetries)
}
