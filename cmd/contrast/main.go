// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command contrast adjusts colors to meet WCAG contrast ratios.
package main

import "cogentcore.org/contrast/cli"

func main() {
	cli.Execute()
}
