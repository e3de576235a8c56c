// SPDX-License-Identifier: GPL-3.0-or-later

package buildinfo

// Version is overridden at build time with -ldflags.
var Version = "v0.1.0"
