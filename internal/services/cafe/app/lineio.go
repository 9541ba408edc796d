package app

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"strings"
)

// connLineIO adapts a streamed connection to the session line contract.
// Written lines are terminated CRLF so raw telnet clients render cleanly;
// input is accepted with either LF or CRLF terminators.
type connLineIO struct {
	conn   net.Conn
	reader *bufio.Reader
}

func newConnLineIO(conn net.Conn) *connLineIO {
	return &connLineIO{conn: conn, reader: bufio.NewReader(conn)}
}

func (c *connLineIO) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		if err := c.WriteLine(prompt); err != nil {
			return "", err
		}
	}
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if line == "" {
			return "", err
		}
		// The stream ended mid-line; hand over what arrived.
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *connLineIO) WriteLine(message string) error {
	if !strings.HasSuffix(message, "\n") {
		message += "\n"
	}
	if _, err := c.conn.Write([]byte(strings.ReplaceAll(message, "\n", "\r\n"))); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	return nil
}

// consoleLineIO runs the same session contract over local streams with
// plain LF endings and inline prompts.
type consoleLineIO struct {
	reader *bufio.Reader
	writer io.Writer
}

func newConsoleLineIO(in io.Reader, out io.Writer) *consoleLineIO {
	return &consoleLineIO{reader: bufio.NewReader(in), writer: out}
}

func (c *consoleLineIO) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		if _, err := fmt.Fprint(c.writer, prompt); err != nil {
			return "", err
		}
	}
	line, err := c.reader.ReadString('\n')
	if err != nil {
		if line == "" {
			return "", err
		}
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *consoleLineIO) WriteLine(message string) error {
	if _, err := fmt.Fprintln(c.writer, message); err != nil {
		return fmt.Errorf("write line: %w", err)
	}
	return nil
}
