// SPDX-License-Identifier: GPL-2.0-or-later

//go:build !debug

package runner

const debugBuild = false
