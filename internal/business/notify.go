package business

import "github.com/giantswarm/wirecheck/pkg/logging"

// Notifier publishes events to interested parties.
type Notifier interface {
	Notify(topic, message string)
}

// LogNotifier writes notifications to the log.
type LogNotifier struct {
	Prefix string
}

// Notify implements Notifier.
func (n LogNotifier) Notify(topic, message string) {
	logging.Info("Notifier", "%s%s: %s", n.Prefix, topic, message)
}
