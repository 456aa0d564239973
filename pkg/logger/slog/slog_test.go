package slog_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	rawslog "log/slog"

	"github.com/stretchr/testify/require"

	"github.com/surrealdb/repeater.go/pkg/logger/slog"
)

type testMethod struct {
	fn    func(msg string, args ...any)
	level rawslog.Level
}

var (
	LogText         string = "Test Log Value"
	CustomFieldName string = "Somekey"
	CustomFieldVal  any    = "SomeVal"
)

type testLogJSON struct {
	Time  time.Time `json:"time"`
	Level string    `json:"level"`
	Msg   string    `json:"msg"`
	// Json field needs to match with CustomFieldName
	CustomVal any `json:"SomeKey"`
}

func TestLogger(t *testing.T) {
	buffer := bytes.NewBuffer([]byte{})

	// level needs to be set to debug for log all
	logger, err := slog.NewFormat(buffer, "json", rawslog.LevelDebug)
	require.NoError(t, err)

	testMethods := []testMethod{
		{fn: logger.Error, level: rawslog.LevelError},
		{fn: logger.Warn, level: rawslog.LevelWarn},
		{fn: logger.Info, level: rawslog.LevelInfo},
		{fn: logger.Debug, level: rawslog.LevelDebug},
	}

	for _, v := range testMethods {
		t.Run(fmt.Sprintf("testing %s", v.level.String()), func(tAlt *testing.T) {
			checkMethod(v.fn, buffer, v.level.String(), tAlt)
		})
		buffer.Reset()
	}
}

func TestLoggerLevel(t *testing.T) {
	buffer := bytes.NewBuffer([]byte{})
	logger := slog.New(rawslog.NewJSONHandler(buffer, &rawslog.HandlerOptions{Level: rawslog.LevelWarn}))

	logger.Info(LogText)
	logger.Debug(LogText)
	require.Zero(t, buffer.Len())
}

func TestNewFormat(t *testing.T) {
	buffer := bytes.NewBuffer([]byte{})
	logger, err := slog.NewFormat(buffer, "text", rawslog.LevelInfo)
	require.NoError(t, err)
	logger.Info(LogText, CustomFieldName, CustomFieldVal)
	require.Contains(t, buffer.String(), "Somekey=SomeVal")

	_, err = slog.NewFormat(buffer, "xml", rawslog.LevelInfo)
	require.Error(t, err)
}

func checkMethod(loggerFunc func(msg string, args ...any), buffer *bytes.Buffer, levelStr string, t *testing.T) {
	require.Zero(t, buffer.Len())

	loggerFunc(LogText, CustomFieldName, CustomFieldVal)

	line := buffer.Bytes()

	testLogJSONVal := new(testLogJSON)
	err := json.Unmarshal(line, &testLogJSONVal)
	require.NoError(t, err)

	require.Equal(t, levelStr, testLogJSONVal.Level)
	require.Equal(t, LogText, testLogJSONVal.Msg)
	require.Equal(t, CustomFieldVal, testLogJSONVal.CustomVal)
}
