// Command jrdap-install downloads the jrdap RDAP client and installs it to
// /usr/local/bin/jrdap. It usually needs to run as root.
package main

import "github.com/gbxyz/jrdap-install/cmd/jrdap-install/cmd"

func main() {
	cmd.Execute()
}
