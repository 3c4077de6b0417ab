// Package header composes and writes ENV_VARS.hpp, the generated header that
// carries the logging build constants.
//
// Layout of the rendered file:
//
//	License            — fixed MIT block
//	Notice             — auto-generation warning
//	#ifndef/#define    — ENV_VARS_HPP inclusion guard
//	#define ...        — zero or more constants, fixed order
//	#endif             — guard close
package header

import (
	"strings"

	"github.com/hartyporpoise/envheader/internal/config"
)

// Guard is the inclusion-guard macro of the generated header.
const Guard = "ENV_VARS_HPP"

// License is the MIT block that opens every generated header.
const License = `/*
 * MIT License
 * 
 * Copyright (c) 2025 Swarnendu RC
 * 
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 * 
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 * 
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */
`

// Notice warns readers that the file is generated.
const Notice = `
/*
 * Author: Swarnendu RC
 *
 * NOTE: This file is auto-generated. Do NOT modify this file manually.
 *       If changes are needed, please modify the generator instead:
 *       envheader (cmd/envheader)
 */
`

// Document is the ordered list of #define lines between the guards.
type Document struct {
	Defines []string
}

// Compose builds the document for cfg. fileSize is the already-parsed
// FILE_SIZE expression; pass "" to omit the define.
func Compose(cfg config.Config, fileSize string) Document {
	var d Document

	if cfg.LoggingEnabled() {
		d.Defines = append(d.Defines, "#define FILE_LOGGING 1")
	}
	if fileSize != "" {
		d.Defines = append(d.Defines, "#define FILE_SIZE "+fileSize)
	}
	if cfg.LogFilePath != "" {
		d.Defines = append(d.Defines, "#define LOG_FILE_PATH "+quote(cfg.LogFilePath))
	}
	if cfg.LogFileName != "" {
		d.Defines = append(d.Defines, "#define LOG_FILE_NAME "+quote(cfg.LogFileName))
	}
	if cfg.LogFileExtn != "" {
		d.Defines = append(d.Defines, "#define LOG_FILE_EXTN "+quote(dotted(cfg.LogFileExtn)))
	}
	return d
}

// Lines returns every line of the header, preamble included, without
// trailing newlines. Blank separator lines appear as "".
func (d Document) Lines() []string {
	var lines []string
	lines = append(lines, strings.Split(strings.TrimSuffix(License+Notice, "\n"), "\n")...)
	lines = append(lines, "", "#ifndef "+Guard, "#define "+Guard, "")
	lines = append(lines, d.Defines...)
	lines = append(lines, "", "#endif // "+Guard)
	return lines
}

// Render returns the file content. The output depends only on d, so equal
// documents render to identical bytes.
func (d Document) Render() []byte {
	return []byte(strings.Join(d.Lines(), "\n") + "\n")
}

// quote wraps v in double quotes. Embedded quotes are not escaped; callers
// are expected to pass sanitised values.
func quote(v string) string {
	return `"` + v + `"`
}

func dotted(ext string) string {
	if strings.HasPrefix(ext, ".") {
		return ext
	}
	return "." + ext
}
