package main

import (
	"fmt"
	"os"

	"cloud.google.com/go/storage"
	"github.com/smendoza/leytext"
	"github.com/smendoza/leytext/gcs"
)

// Run executes the check command: load a previously processed document and
// re-validate it against the expected article count.
func (c *CheckCmd) Run(deps *Dependencies) error {
	data, err := c.load(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leytext.ErrorMessage(err))
		return err
	}

	doc, err := leytext.DecodeJSON(data)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leytext.ErrorMessage(err))
		return err
	}

	validator := leytext.Validator{
		MinBodyLength:  c.MinBodyLength,
		MaxSymbolRatio: c.MaxSymbolRatio,
	}
	report, err := validator.Validate(doc, c.ExpectedTotal)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", leytext.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "ley %s, promulgada %s, publicada %s\n",
		doc.Meta.NumeroLey, doc.Meta.FechaPromulgacion, doc.Meta.FechaPublicacion)
	printReport(deps, report)

	if !report.Passed() {
		return fmt.Errorf("document failed validation")
	}
	return nil
}

// load reads the document bytes from disk, or from GCS when --bucket is
// given (the path argument is then the object name).
func (c *CheckCmd) load(deps *Dependencies) ([]byte, error) {
	if c.Bucket == "" {
		data, err := os.ReadFile(c.Path)
		if err != nil {
			return nil, leytext.Errorf(leytext.ESTORAGE, "reading %q: %v", c.Path, err)
		}
		return data, nil
	}

	client, err := storage.NewClient(deps.Ctx)
	if err != nil {
		return nil, leytext.Errorf(leytext.ESTORAGE, "creating storage client: %v", err)
	}
	defer client.Close()

	store := gcs.NewStore(client, c.Bucket,
		gcs.WithPrefix(c.Prefix),
		gcs.WithBlobName(leytext.BlobProcessed, c.Path),
	)
	return store.Read(deps.Ctx, leytext.BlobProcessed)
}
