package services

import (
	"github.com/Dosada05/zone-cup/brackets"
)

// Notifier pushes state changes to spectators. *brackets.Hub implements it.
type Notifier interface {
	Notify(eventType string, payload interface{})
}

type noopNotifier struct{}

func (noopNotifier) Notify(string, interface{}) {}

func notifierOrNoop(n Notifier) Notifier {
	if n == nil {
		return noopNotifier{}
	}
	return n
}

var _ Notifier = (*brackets.Hub)(nil)
