package store

import (
	"context"
	"fmt"

	"github.com/asmit/mentis/ent"
	"github.com/asmit/mentis/ent/credential"
)

// credentialRepo implements CredentialRepo using the ent client.
type credentialRepo struct {
	client *ent.Client
}

func (r *credentialRepo) Set(ctx context.Context, name, value string) error {
	n, err := r.client.Credential.Update().
		Where(credential.Name(name)).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update credential %q: %w", name, err)
	}
	if n > 0 {
		return nil
	}

	_, err = r.client.Credential.Create().
		SetName(name).
		SetValue(value).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save credential %q: %w", name, err)
	}
	return nil
}

func (r *credentialRepo) Get(ctx context.Context, name string) (string, error) {
	c, err := r.client.Credential.Query().
		Where(credential.Name(name)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("query credential %q: %w", name, err)
	}
	return c.Value, nil
}

func (r *credentialRepo) Delete(ctx context.Context, name string) error {
	_, err := r.client.Credential.Delete().
		Where(credential.Name(name)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete credential %q: %w", name, err)
	}
	return nil
}
