// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceFile_00(t *testing.T) {
	file := NewSourceFile("test", []byte("v + 1\nmath.sin(x)"))
	//
	assert.Equal(t, 0, file.Index(1, 0))
	assert.Equal(t, 4, file.Index(1, 4))
	assert.Equal(t, 6, file.Index(2, 0))
	assert.Equal(t, 11, file.Index(2, 5))
	// Clamped to the end of the line
	assert.Equal(t, 5, file.Index(1, 99))
	// Clamped to the end of the file
	assert.Equal(t, 17, file.Index(3, 0))
}

func TestSourceFile_01(t *testing.T) {
	file := NewSourceFile("test", []byte("v + 1\nmath.sin(x)"))
	err := file.ErrorAt(2, 9, 1, "unknown variable 'x'")
	//
	span := err.Span()
	assert.Equal(t, 15, span.Start())
	assert.Equal(t, 1, span.Length())
	//
	line := err.FirstEnclosingLine()
	assert.Equal(t, 2, line.Number())
	assert.Equal(t, 6, line.Start())
	assert.Equal(t, "math.sin(x)", line.String())
	assert.Equal(t, "15:16:unknown variable 'x'", err.Error())
}

func TestSourceFile_02(t *testing.T) {
	// Errors at the end of input
	file := NewSourceFile("test", []byte("v +"))
	err := file.ErrorAt(1, 3, 0, "unexpected end of expression")
	//
	span := err.Span()
	assert.Equal(t, 3, span.Start())
	assert.Equal(t, 0, span.Length())
	//
	line := err.FirstEnclosingLine()
	assert.Equal(t, "v +", line.String())
	assert.Equal(t, 1, line.Number())
}

func TestSourceFile_03(t *testing.T) {
	// Multibyte characters are indexed by rune
	file := NewSourceFile("test", []byte("'é' + x"))
	assert.Equal(t, 6, file.Index(1, 6))
	assert.Equal(t, 'x', file.Contents()[file.Index(1, 6)])
}
