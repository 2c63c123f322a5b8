// The outbox relay polls pending outbox rows and publishes them to Kafka.
// Rows are marked completed only after the broker acknowledges the write,
// so delivery is at-least-once and consumers deduplicate on event_id.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/spanner"
	kafkago "github.com/segmentio/kafka-go"

	"github.com/garasindo/sparepart-service/internal/app/outbox"
	"github.com/garasindo/sparepart-service/internal/pkg/clock"
	"github.com/garasindo/sparepart-service/internal/pkg/committer"
	"github.com/garasindo/sparepart-service/internal/pkg/kafka"
)

type config struct {
	SpannerDB    string
	KafkaBrokers string
	Topic        string
	PollInterval time.Duration
	BatchSize    int64
}

func main() {
	cfg := loadConfig()

	log.Printf("Starting outbox relay...")
	log.Printf("Spanner Database: %s", cfg.SpannerDB)
	log.Printf("Kafka Topic: %s", cfg.Topic)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatalf("Relay failed: %v", err)
	}

	log.Println("Relay stopped")
}

func run(ctx context.Context, cfg config) error {
	spannerClient, err := spanner.NewClient(ctx, cfg.SpannerDB)
	if err != nil {
		return err
	}
	defer spannerClient.Close()

	kafkaClient := kafka.NewClient(cfg.KafkaBrokers)
	if !kafkaClient.Enabled() {
		log.Println("No Kafka brokers configured, nothing to do")
		return nil
	}
	writer := kafkaClient.NewWriter(cfg.Topic)
	defer writer.Close()

	relay := &relay{
		repo:      outbox.NewRepo(spannerClient),
		committer: committer.NewCommitter(spannerClient),
		writer:    writer,
		clock:     clock.NewRealClock(),
		batchSize: cfg.BatchSize,
	}

	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := relay.drainOnce(ctx); err != nil {
				log.Printf("Relay pass error: %v", err)
			}
		}
	}
}

type relay struct {
	repo      outbox.Repository
	committer *committer.Committer
	writer    *kafkago.Writer
	clock     clock.Clock
	batchSize int64
}

// drainOnce publishes one batch of pending events. Publish failures mark
// the row failed with an incremented retry count instead of aborting the
// batch, so one poisoned event cannot wedge the relay.
func (r *relay) drainOnce(ctx context.Context) error {
	events, err := r.repo.ListPending(ctx, r.batchSize)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		return nil
	}

	plan := committer.NewPlan()
	for _, event := range events {
		if err := kafka.Publish(ctx, r.writer, event.AggregateID, []byte(event.Payload)); err != nil {
			log.Printf("Publish failed for event %s: %v", event.EventID, err)
			plan.Add(r.repo.MarkFailedMut(event, err.Error()))
			continue
		}
		plan.Add(r.repo.MarkCompletedMut(event.EventID, r.clock.Now()))
	}

	if err := r.committer.Apply(ctx, plan); err != nil {
		return err
	}

	log.Printf("Relayed %d events", len(events))
	return nil
}

func loadConfig() config {
	pollInterval := 2 * time.Second
	if v := os.Getenv("RELAY_POLL_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			pollInterval = d
		}
	}

	spannerDB := os.Getenv("SPANNER_DATABASE")
	if spannerDB == "" {
		spannerDB = "projects/test-project/instances/dev-instance/databases/sparepart-db"
	}

	topic := os.Getenv("KAFKA_TOPIC")
	if topic == "" {
		topic = "sparepart.store.events"
	}

	return config{
		SpannerDB:    spannerDB,
		KafkaBrokers: os.Getenv("KAFKA_BROKERS"),
		Topic:        topic,
		PollInterval: pollInterval,
		BatchSize:    100,
	}
}
