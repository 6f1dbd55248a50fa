package matrix

import (
	"sync"

	"indexdist/internal/seqtable"
)

// BuildAll builds one matrix per channel, in channel order. With workers > 1
// channels are built concurrently; the returned slice and error do not
// depend on completion order. On failure the error of the lowest failing
// channel is returned and no matrices are.
func BuildAll(ref, test *seqtable.Table, channels []string, workers int) ([]*Matrix, error) {
	out := make([]*Matrix, len(channels))
	if workers > len(channels) {
		workers = len(channels)
	}
	if workers <= 1 {
		for k, ch := range channels {
			m, err := Build(ref, test, ch)
			if err != nil {
				return nil, err
			}
			out[k] = m
		}
		return out, nil
	}

	var (
		mu        sync.Mutex
		minFailed = len(channels)
		errs      = make([]error, len(channels))
	)
	jobs := make(chan int)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for k := range jobs {
				mu.Lock()
				skip := k > minFailed
				mu.Unlock()
				if skip {
					continue
				}
				m, err := Build(ref, test, channels[k])
				if err != nil {
					mu.Lock()
					errs[k] = err
					if k < minFailed {
						minFailed = k
					}
					mu.Unlock()
					continue
				}
				out[k] = m
			}
		}()
	}
	for k := range channels {
		jobs <- k
	}
	close(jobs)
	wg.Wait()

	if minFailed < len(channels) {
		return nil, errs[minFailed]
	}
	return out, nil
}
