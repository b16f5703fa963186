/*
 * Copyright (c) 2025 by Alexander Drost, Oldenburg, Germany.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/zalando/go-keyring"
)

// Service/keys for OS keyring.
const (
	keyringService     = "penplot"
	keyGalleryPassword = "gallery_db_password"
)

// SecretStore abstracts the OS keyring.
type SecretStore interface {
	Get(service, key string) (string, error)
	Set(service, key, value string) error
	Delete(service, key string) error
}

// osKeyring implements SecretStore using github.com/zalando/go-keyring.
type osKeyring struct{}

func (osKeyring) Get(service, key string) (string, error) { return keyring.Get(service, key) }
func (osKeyring) Set(service, key, value string) error    { return keyring.Set(service, key, value) }
func (osKeyring) Delete(service, key string) error        { return keyring.Delete(service, key) }

var secrets SecretStore = osKeyring{}

// SetGalleryPassword stores the gallery database password in the keyring.
func SetGalleryPassword(password string) error {
	if err := secrets.Set(keyringService, keyGalleryPassword, password); err != nil {
		return fmt.Errorf("store gallery password: %w", err)
	}
	return nil
}

// DeleteGalleryPassword removes a stored password; a missing entry is not an error.
func DeleteGalleryPassword() error {
	err := secrets.Delete(keyringService, keyGalleryPassword)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("delete gallery password: %w", err)
	}
	return nil
}

// GalleryDSN returns the DSN of the gallery index. For postgres DSNs without a
// password, the password stored in the keyring is filled in, in both URL and
// keyword/value form. Other DSNs are returned unchanged.
func (c AppConfig) GalleryDSN() (string, error) {
	dsn := c.Gallery.DSN
	if c.Gallery.Driver != "pgx" {
		return dsn, nil
	}
	if dsn == "" {
		return "", errors.New("gallery: pgx driver needs a dsn")
	}
	if isURLDSN(dsn) {
		u, err := url.Parse(dsn)
		if err != nil {
			return "", fmt.Errorf("gallery dsn: %w", err)
		}
		if u.User != nil {
			if _, ok := u.User.Password(); ok {
				return dsn, nil
			}
		}
		pw, found, err := galleryPassword()
		if err != nil || !found {
			return dsn, err
		}
		name := ""
		if u.User != nil {
			name = u.User.Username()
		}
		u.User = url.UserPassword(name, pw)
		return u.String(), nil
	}
	if strings.Contains(dsn, "password=") {
		return dsn, nil
	}
	pw, found, err := galleryPassword()
	if err != nil || !found {
		return dsn, err
	}
	quoted := strings.NewReplacer(`\`, `\\`, `'`, `\'`).Replace(pw)
	return dsn + " password='" + quoted + "'", nil
}

func isURLDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func galleryPassword() (pw string, found bool, err error) {
	pw, err = secrets.Get(keyringService, keyGalleryPassword)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read gallery password: %w", err)
	}
	return pw, true, nil
}
