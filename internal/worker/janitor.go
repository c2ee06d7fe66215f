package worker

import "time"

// Janitor feeds a recurring task into a pool. The service uses it to purge
// expired session rows, which are insert-only and would otherwise pile up.
type Janitor struct {
	stop chan struct{}
	done chan struct{}
}

// StartJanitor submits task to the pool every interval until Stop is called.
func StartJanitor(p Pool, interval time.Duration, task Task) *Janitor {
	j := &Janitor{stop: make(chan struct{}), done: make(chan struct{})}
	ticker := time.NewTicker(interval)
	go func() {
		defer close(j.done)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				p.Submit(task)
			case <-j.stop:
				return
			}
		}
	}()
	return j
}

// Stop halts the ticker loop; tasks already submitted still run.
func (j *Janitor) Stop() {
	close(j.stop)
	<-j.done
}
