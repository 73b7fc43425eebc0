package room

import (
	"flipn-server/pkg/playable"
)

const logMessageLimit = 25

// addLogMessages retains the most recent activity so late joiners get a backlog
// Note: this must only be called from within the run loop
func (d *Dealer) addLogMessages(messages []*playable.LogMessage) {
	m := append(d.logMessages, messages...)
	count := len(m)
	if count > logMessageLimit {
		m = m[count-logMessageLimit:]
	}

	d.logMessages = m
}
