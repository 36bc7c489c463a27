// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-rate-pair/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, appVersion string) string {
	var b strings.Builder

	b.WriteString("Название приложения: Конвертер валют\n")
	b.WriteString("Версия: ")
	b.WriteString(valueOrNA(appVersion))
	b.WriteString("\n")
	b.WriteString("Сборка: ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString("Дата: ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString("Коммит: ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", b.String(), "esc: назад")
}
