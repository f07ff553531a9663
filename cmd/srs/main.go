/*
Copyright © 2026 the SRS authors.
This file is part of SRS.

SRS is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

SRS is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with SRS.  If not, see <http://www.gnu.org/licenses/>.
*/

// Command srs is a command-line interface for the SRS spatial reasoning
// system.
package main

import (
	"fmt"
	"os"

	"github.com/spatialreason/srs/srsutil"
)

func main() {
	if err := srsutil.Root.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
