// Package mqtt_export registers the "mqtt" exporter, which publishes each run
// as one JSON message (the same document the json exporter writes) to
// <topic>/<study> on an MQTT broker.
package mqtt_export

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/specialistvlad/statgrid/internal/config"
	"github.com/specialistvlad/statgrid/internal/ctxlog"
	"github.com/specialistvlad/statgrid/internal/export"
	"github.com/specialistvlad/statgrid/internal/registry"
	"github.com/specialistvlad/statgrid/modules/json_export"
)

// Kind is the export kind name used in study files.
const Kind = "mqtt"

// DefaultTopic is the topic prefix used when none is configured.
const DefaultTopic = "statgrid/runs"

// Module implements the registry.Module interface for this package.
type Module struct{}

// Client is the subset of mqtt.Client the exporter uses.
type Client interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
	Disconnect(quiesce uint)
}

// Exporter publishes runs to a broker.
type Exporter struct {
	Broker   string
	Topic    string
	QoS      byte
	Retained bool
	Timeout  time.Duration

	connect func() (Client, error)
}

// Export implements export.Exporter. It connects, publishes and disconnects.
func (e *Exporter) Export(ctx context.Context, run *export.Run) error {
	payload, err := json.Marshal(json_export.NewDocument(run))
	if err != nil {
		return fmt.Errorf("failed to encode run: %w", err)
	}

	c, err := e.connect()
	if err != nil {
		return err
	}
	defer c.Disconnect(250)

	topic := e.Topic + "/" + run.Study
	token := c.Publish(topic, e.QoS, e.Retained, payload)
	if err := waitToken(ctx, token, e.Timeout); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}

	ctxlog.FromContext(ctx).Info("Exported records.", "format", Kind, "broker", e.Broker, "topic", topic, "bytes", len(payload))
	return nil
}

// String implements export.Exporter.
func (e *Exporter) String() string { return "mqtt:" + e.Broker + "/" + e.Topic }

func waitToken(ctx context.Context, token mqtt.Token, timeout time.Duration) error {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-token.Done():
		return token.Error()
	case <-timer.C:
		return fmt.Errorf("timed out after %s", timeout)
	case <-ctx.Done():
		return ctx.Err()
	}
}

// New builds an MQTT exporter. Options: broker (required, e.g.
// tcp://localhost:1883), topic, client_id, qos (0, 1 or 2; default 1),
// retained ("true"/"false") and timeout (Go duration, default 10s).
func New(_ context.Context, opts config.Options) (export.Exporter, error) {
	broker, err := opts.Require("broker")
	if err != nil {
		return nil, err
	}

	qos, err := strconv.Atoi(opts.Get("qos", "1"))
	if err != nil || qos < 0 || qos > 2 {
		return nil, fmt.Errorf("invalid qos %q: want 0, 1 or 2", opts.Get("qos", ""))
	}
	retained, err := strconv.ParseBool(opts.Get("retained", "false"))
	if err != nil {
		return nil, fmt.Errorf("invalid retained %q: %w", opts.Get("retained", ""), err)
	}
	timeout, err := time.ParseDuration(opts.Get("timeout", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid timeout: %w", err)
	}

	e := &Exporter{
		Broker:   broker,
		Topic:    opts.Get("topic", DefaultTopic),
		QoS:      byte(qos),
		Retained: retained,
		Timeout:  timeout,
	}
	clientID := opts.Get("client_id", "statgrid-"+uuid.NewString()[:8])
	e.connect = func() (Client, error) {
		return dial(broker, clientID, timeout)
	}
	return e, nil
}

func dial(broker, clientID string, timeout time.Duration) (Client, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(broker)
	opts.SetClientID(clientID)
	opts.SetCleanSession(true)
	opts.SetAutoReconnect(false)
	opts.SetConnectTimeout(timeout)
	opts.SetKeepAlive(30 * time.Second)

	c := mqtt.NewClient(opts)
	token := c.Connect()
	if !token.WaitTimeout(timeout) {
		return nil, fmt.Errorf("timed out connecting to %s", broker)
	}
	if err := token.Error(); err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", broker, err)
	}
	return c, nil
}

// Register registers the exporter factory with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterExporter(Kind, New)
}
