package main

import (
	"fmt"
	"os"
)

func doExport(s settings, out string) error {
	st, user, err := setupStore(s)
	if err != nil {
		return err
	}

	w := os.Stdout
	if out != "-" {
		f, err := os.Create(out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	n, err := st.Export(w)
	if err != nil {
		return err
	}

	if out != "-" {
		fmt.Printf("%v exported %d answers for %q to %q.\n", checkmark, n, user.DisplayName, out)
	}
	return nil
}

func doImport(s settings, path string) error {
	st, user, err := setupStore(s)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := st.Import(f)
	if err != nil {
		return err
	}

	fmt.Printf("%v imported %d answers for %q.\n", checkmark, n, user.DisplayName)
	return nil
}
