package artpdf

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixFormatter(t *testing.T) {
	formatter := &PrefixFormatter{}

	tests := []struct {
		level    logrus.Level
		data     logrus.Fields
		expected string
	}{
		{logrus.InfoLevel, nil, "[*] message\n"},
		{logrus.InfoLevel, logrus.Fields{doneField: true}, "[+] message\n"},
		{logrus.WarnLevel, nil, "[!] message\n"},
		{logrus.ErrorLevel, nil, "[-] message\n"},
		{logrus.FatalLevel, nil, "[-] message\n"},
		{logrus.DebugLevel, nil, "[.] message\n"},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			entry := &logrus.Entry{Level: tt.level, Message: "message\n", Data: tt.data}

			result, err := formatter.Format(entry)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(result))
		})
	}
}

func TestConverter_Log(t *testing.T) {
	var logOutput bytes.Buffer
	logrus.SetOutput(&logOutput)
	logrus.SetFormatter(&PrefixFormatter{})
	defer func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetFormatter(&logrus.TextFormatter{})
	}()

	t.Run("logs progress and success", func(t *testing.T) {
		logOutput.Reset()
		server, _ := newArticleServer(t, 200, examplePost)
		cfg := testConfig(t)
		cfg.EnableLog = true

		_, err := NewConverter(cfg, &fakeEngine{size: 4096}).Convert(context.Background(), server.URL)
		require.NoError(t, err)

		assert.Contains(t, logOutput.String(), "[*] requesting "+server.URL)
		assert.Contains(t, logOutput.String(), "[*] generating PDF with fake")
		assert.Contains(t, logOutput.String(), "[+] saved ")
	})

	t.Run("disabled log still reports errors", func(t *testing.T) {
		logOutput.Reset()
		server, _ := newArticleServer(t, 200, `<html><body></body></html>`)
		cfg := testConfig(t)

		_, err := NewConverter(cfg, &fakeEngine{}).Convert(context.Background(), server.URL)
		require.Error(t, err)

		assert.NotContains(t, logOutput.String(), "requesting")
		assert.Contains(t, logOutput.String(), "[-] content error: article content not found")
	})
}
