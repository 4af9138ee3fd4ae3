package alertpublisher

import (
	"os"
	"strings"
)

const defaultAlertTopic = "campus.crowd.alerts"

type Config struct {
	Brokers []string
	Topic   string
}

func LoadConfig() *Config {
	var brokers []string
	for _, broker := range strings.Split(os.Getenv("KAFKA_BROKERS"), ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			brokers = append(brokers, broker)
		}
	}

	topic := os.Getenv("KAFKA_ALERT_TOPIC")
	if topic == "" {
		topic = defaultAlertTopic
	}

	return &Config{
		Brokers: brokers,
		Topic:   topic,
	}
}
