package container

import "sync"

var (
	defaultContainer *IocContainer
	defaultOnce      sync.Once
)

// Default returns the process-wide container, creating it on first use.
// Every caller, from any goroutine, observes the same instance.
func Default() *IocContainer {
	defaultOnce.Do(func() {
		defaultContainer = New()
	})
	return defaultContainer
}
