package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const binary = "go-bpmn-model"

func main() {
	log.SetFlags(0)

	flags := flag.NewFlagSet("build", flag.ContinueOnError)
	flags.SetOutput(log.Writer())

	var (
		tagName   string
		skipTests bool
	)
	flags.StringVar(&tagName, "tag-name", "", "name of the tag to build")
	flags.BoolVar(&skipTests, "skip-tests", false, "skip running the tests before building")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
	}

	if tagName == "" {
		log.Fatal("please provide a tag name")
	}

	if err := os.RemoveAll("./build"); err != nil {
		log.Fatalf("failed to delete build directory: %v", err)
	}
	if err := os.MkdirAll("./build", 0700); err != nil {
		log.Fatalf("failed to create build directory: %v", err)
	}

	if !skipTests {
		run(exec.Command("go", "test", "./..."), "all")
	}

	builds := []osArch{
		{os: "darwin", arch: "arm64"},
		{os: "linux", arch: "amd64"},
		{os: "windows", arch: "amd64"},
	}

	for _, build := range builds {
		output := build.binaryName()

		goBuild(build, "-ldflags", "-X main.version="+tagName, "-o", "./"+output, "./cmd/"+binary)

		archive := fmt.Sprintf("%s-%s-%s.tar.gz", binary, build.os, build.arch)

		// example designs are shipped together with the binary
		designs, err := filepath.Glob("./test/design/*")
		if err != nil {
			log.Fatalf("failed to list example designs: %v", err)
		}

		args := append([]string{"cfz", "./build/" + archive, output}, designs...)
		run(exec.Command("tar", args...), build.String())

		createChecksum(build, archive)

		if err := os.Remove(output); err != nil {
			log.Fatalf("failed to delete binary %s: %v", output, err)
		}
	}
}

type osArch struct {
	os   string
	arch string
}

func (b osArch) binaryName() string {
	if b.os == "windows" {
		return binary + ".exe"
	}
	return binary
}

func (b osArch) String() string {
	return b.os + "-" + b.arch
}

func goBuild(build osArch, args ...string) {
	cmd := exec.Command("go")
	cmd.Args = append(cmd.Args, "build")
	cmd.Args = append(cmd.Args, args...)
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, "CGO_ENABLED=0")
	cmd.Env = append(cmd.Env, "GOOS="+build.os)
	cmd.Env = append(cmd.Env, "GOARCH="+build.arch)

	run(cmd, build.String())
}

func run(cmd *exec.Cmd, prefix string) []byte {
	log.Printf("%s: %s", prefix, strings.Join(cmd.Args, " "))

	out, err := cmd.Output()
	if len(out) != 0 {
		log.Println(string(out))
	}
	if err != nil {
		log.Fatalf("failed to run command: %v", err)
	}
	return out
}

func createChecksum(build osArch, archive string) {
	cmd := exec.Command("sha256sum", archive)
	cmd.Dir = "./build"

	out := run(cmd, build.String())

	name := strings.TrimSuffix(archive, ".tar.gz") + ".sha256"
	if err := os.WriteFile("./build/"+name, out, 0600); err != nil {
		log.Fatalf("failed to write checksum file: %v", err)
	}
}
