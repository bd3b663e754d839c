// Package ticket renders the QR codes students show at activity check-in.
package ticket

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/yeqown/go-qrcode/v2"
	"github.com/yeqown/go-qrcode/writer/standard"
)

// CheckInURL is the address encoded in the ticket of userID for activityID.
func CheckInURL(publicURL string, activityID, userID uint) string {
	return fmt.Sprintf("%s/activities/%d/check-in?user=%d", strings.TrimRight(publicURL, "/"), activityID, userID)
}

// PNG encodes content as a QR code image.
func PNG(content string) ([]byte, error) {
	qr, err := qrcode.New(content)
	if err != nil {
		return nil, fmt.Errorf("qrcode.New -> %w", err)
	}

	var buf bytes.Buffer
	qrW := standard.NewWithWriter(writeCloser{Writer: &buf},
		standard.WithBuiltinImageEncoder(standard.PNG_FORMAT),
		standard.WithQRWidth(8),
	)
	defer func() {
		_ = qrW.Close()
	}()

	if err = qr.Save(qrW); err != nil {
		return nil, fmt.Errorf("qr.Save -> %w", err)
	}

	return buf.Bytes(), nil
}

type writeCloser struct {
	io.Writer
}

func (writeCloser) Close() error {
	return nil
}
