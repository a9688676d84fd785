package htmldown

// Result carries the outcome of an asynchronous conversion.
type Result struct {
	Markdown string
	Err      error
}

// ConvertAsync runs a conversion on its own goroutine and returns a channel
// that yields the single result. The conversion has no internal suspension
// points and always runs to completion once started; callers needing bounded
// latency must impose it around the receive, not inside the conversion.
func ConvertAsync(c Converter, html string) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		md, err := c.Convert(html)
		ch <- Result{Markdown: md, Err: err}
	}()
	return ch
}
