package goroutine

import (
	"runtime/debug"

	"github.com/x-xyz/ensagent/base/log"
)

type PanicEvent struct {
	Panic interface{}
	Stack []byte
}

type RecoverableGoOptions struct {
	beforeStart    func()
	afterEnded     func()
	afterRecovered func(panic interface{}, stack []byte)
}

type RecoverableGoOptionsFunc = func(*RecoverableGoOptions)

func WithBeforeStart(f func()) RecoverableGoOptionsFunc {
	return func(options *RecoverableGoOptions) {
		options.beforeStart = f
	}
}

func WithAfterEnded(f func()) RecoverableGoOptionsFunc {
	return func(options *RecoverableGoOptions) {
		options.afterEnded = f
	}
}

func WithAfterRecovered(f func(panic interface{}, stack []byte)) RecoverableGoOptionsFunc {
	return func(options *RecoverableGoOptions) {
		options.afterRecovered = f
	}
}

// RecoverableGo runs f in a goroutine. The returned channel receives the
// panic if f panicked and is closed otherwise.
func RecoverableGo(f func(), fns ...RecoverableGoOptionsFunc) <-chan *PanicEvent {
	opts := RecoverableGoOptions{}
	for _, fn := range fns {
		fn(&opts)
	}

	panicChan := make(chan *PanicEvent, 1)

	go func() {
		defer func() {
			if opts.afterEnded != nil {
				opts.afterEnded()
			}

			if p := recover(); p != nil {
				stack := debug.Stack()

				log.Log().WithFields(log.Fields{
					"err":   p,
					"stack": string(stack),
				}).Error("panic")

				if opts.afterRecovered != nil {
					opts.afterRecovered(p, stack)
				}

				panicChan <- &PanicEvent{p, stack}
			}
			close(panicChan)
		}()

		if opts.beforeStart != nil {
			opts.beforeStart()
		}

		f()
	}()

	return panicChan
}
