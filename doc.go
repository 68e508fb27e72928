// Package sealbox provides public-key encryption for short text payloads
// using RSA-OAEP with a 2048-bit modulus and SHA-256, plus lossless
// serialization of key material to a transport-safe base64 encoding
// (SPKI for public keys, PKCS#8 for private keys).
//
// Basic usage:
//
//	cipher, err := sealbox.Generate()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ciphertext, err := cipher.Encrypt("Hello, World!")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	plaintext, err := cipher.Decrypt(ciphertext)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(plaintext) // Hello, World!
//
// Key pairs survive process restarts through export and import:
//
//	exported, err := cipher.Export()
//	// ... persist exported.PublicKey / exported.PrivateKey ...
//
//	kp, err := sealbox.ImportKeyPair(exported.PublicKey, exported.PrivateKey)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cipher = sealbox.FromKeyPair(kp)
//
// A Cipher owns exactly one key pair for its lifetime and is safe for
// concurrent use. Plaintexts are limited to 190 UTF-8 bytes per call;
// chunking larger payloads is out of scope and left to the caller.
package sealbox
