// Package render turns a DOT graph description into an image through a
// layout tool.
//
// [PNG] shells out to the Graphviz dot executable; [SVG] lays the graph
// out in-process through the embedded Graphviz of goccy/go-graphviz, so
// SVG output works without any external tooling installed. Failures
// carry RENDER_* codes from [apkerrors].
package render

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/apkgraph/apkgraph/pkg/apkerrors"
)

// dotTool is the external layout executable invoked by [PNG].
const dotTool = "dot"

// PNG lays out the DOT text as a PNG image at outPath using the external
// dot executable. Returns RENDER_TOOL_MISSING when dot is not on PATH
// and RENDER_FAILED with the tool's stderr on a non-zero exit.
func PNG(ctx context.Context, dot string, outPath string) error {
	if _, err := exec.LookPath(dotTool); err != nil {
		return apkerrors.Wrap(apkerrors.ErrCodeRenderToolMissing, err,
			"%s not found on PATH; install graphviz (apk add graphviz / apt install graphviz)", dotTool)
	}

	cmd := exec.CommandContext(ctx, dotTool, "-Tpng", "-o", outPath)
	cmd.Stdin = strings.NewReader(dot)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return apkerrors.Wrap(apkerrors.ErrCodeRenderFailed, err,
			"%s failed: %s", dotTool, strings.TrimSpace(stderr.String()))
	}
	return nil
}

// SVG lays out the DOT text in-process and returns the SVG bytes.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, apkerrors.Wrap(apkerrors.ErrCodeRenderFailed, err, "init graphviz")
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, apkerrors.Wrap(apkerrors.ErrCodeRenderFailed, err, "parse DOT")
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, apkerrors.Wrap(apkerrors.ErrCodeRenderFailed, err, "render SVG")
	}
	return buf.Bytes(), nil
}

// SVGFile lays out the DOT text in-process and writes the SVG to outPath.
func SVGFile(ctx context.Context, dot string, outPath string) error {
	svg, err := SVG(ctx, dot)
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, svg, 0o644); err != nil {
		return apkerrors.Wrap(apkerrors.ErrCodeRenderFailed, err, "write %s", outPath)
	}
	return nil
}
