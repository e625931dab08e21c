package stream

import "bufio"

// ReadLine reads one line terminated by CRLF or a bare LF, returned without
// the terminator. Lines longer than the reader's buffer are reassembled in
// full; no length limit is enforced. The returned slice is only valid until
// the next read on the reader.
func ReadLine(reader *bufio.Reader) ([]byte, error) {
	var line []byte
	for {
		l, more, err := reader.ReadLine()
		if err != nil {
			return nil, err
		}
		if line == nil && !more {
			return l, nil
		}
		line = append(line, l...)
		if !more {
			return line, nil
		}
	}
}
