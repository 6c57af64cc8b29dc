package scan

import (
	"bufio"
	"errors"
)

// timeTemplate is the literal prefix every recognized log line carries.
// 'h', 'm' and 's' are decimal-digit placeholders; every other byte must
// match exactly. The hour field is not range-checked beyond "two digits".
const timeTemplate = "[hh:mm:ss]"

// errNoMatch reports a line whose prefix did not match the template. The
// caller skips the line and tries the next one; it never escapes this
// package.
var errNoMatch = errors.New("line does not start with a timestamp")

// scanLine reads one log line from r and returns its timestamp as seconds
// since midnight. Whether or not the prefix matches, the reader is left at
// the start of the next line. Returns errNoMatch for a line without a
// valid prefix and io.EOF once the stream is exhausted.
func scanLine(r *bufio.Reader) (int64, error) {
	var hour, minute, second int64
	for i := 0; i < len(timeTemplate); i++ {
		ch, err := r.ReadByte()
		if err != nil {
			// EOF mid-template: nothing left to resync to.
			return 0, err
		}
		switch slot := timeTemplate[i]; slot {
		case 'h', 'm', 's':
			if ch < '0' || ch > '9' {
				return 0, rejectLine(r, ch)
			}
			digit := int64(ch - '0')
			switch slot {
			case 'h':
				hour = hour*10 + digit
			case 'm':
				minute = minute*10 + digit
			default:
				second = second*10 + digit
			}
		default:
			if ch != slot {
				return 0, rejectLine(r, ch)
			}
		}
	}

	if err := skipToNextLine(r); err != nil {
		return 0, err
	}
	return (hour*60+minute)*60 + second, nil
}

// rejectLine resyncs the reader to the next line and reports the current
// one as unmatched. When the mismatched byte is itself a terminator the
// line already ended, so it is unread first to keep the following line
// intact. EOF during the resync is not an error here; the next scanLine
// call will observe it.
func rejectLine(r *bufio.Reader, ch byte) error {
	if ch == '\r' || ch == '\n' {
		if err := r.UnreadByte(); err != nil {
			return err
		}
	}
	if err := skipToNextLine(r); err != nil {
		return err
	}
	return errNoMatch
}

// skipToNextLine consumes the remainder of the current line including its
// terminator, then absorbs any run of further terminators so that \r\n
// pairs and blank lines are crossed in one step. A byte consumed past the
// run is unread so the next line starts intact. EOF anywhere in the skip
// is fine.
func skipToNextLine(r *bufio.Reader) error {
	for {
		ch, err := r.ReadByte()
		if err != nil {
			return nil
		}
		if ch == '\r' || ch == '\n' {
			break
		}
	}
	for {
		ch, err := r.ReadByte()
		if err != nil {
			return nil
		}
		if ch != '\r' && ch != '\n' {
			return r.UnreadByte()
		}
	}
}
