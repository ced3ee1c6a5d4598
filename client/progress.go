package client

import "io"

// progressReader reports the percentage of bytes read from the request body,
// mirroring the frontend's bytes-sent/bytes-total upload indicator.
type progressReader struct {
	r      io.Reader
	total  int64
	sent   int64
	report func(percent int)
	last   int
}

func newProgressReader(r io.Reader, total int64, report func(percent int)) *progressReader {
	return &progressReader{r: r, total: total, report: report, last: -1}
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	p.sent += int64(n)

	percent := 100
	if p.total > 0 {
		percent = int(p.sent * 100 / p.total)
	}
	if percent != p.last {
		p.last = percent
		p.report(percent)
	}
	return n, err
}
