package shell

import (
	"io"
	"os"
	"path/filepath"
)

func usage(w io.Writer, mode string, execPath string) {
	dat, err := os.ReadFile(
		filepath.Join(execPath, "./shell/helptext/usage-"+mode+".txt"))
	if err != nil {
		io.WriteString(w, "Error loading helptext: "+err.Error())
		return
	}
	w.Write(dat)
}

func usageTopic(w io.Writer, topic string, execPath string) {
	dat, err := os.ReadFile(
		filepath.Join(execPath, "./shell/helptext/"+filepath.Base(topic)+".txt"))
	if err != nil {
		io.WriteString(w, "There is no help text for the topic "+topic+"\n")
		return
	}
	w.Write(dat)
}
