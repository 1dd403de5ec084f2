package utils

import "github.com/spring-cloud/spring-cloud-deployer-sub001/log"

// SentryGo wraps goroutine spawn to capture panic
func SentryGo(f func()) {
	go func() {
		defer log.SentryDefer()
		f()
	}()
}
