// Copyright © 2018 One Concern

// Package core bumps the version of the latest Xcode archive.
//
// A run goes through the following states, in sequence:
//
//  locate: pick the latest archive in the latest archive group
//  duplicate: copy the archive under a time stamped name
//  patch primary: update the Info.plist of the copy
//  patch secondary: update the Info.plist of the app symbol bundle of the copy
//
// The first failure aborts the run. Nothing is rolled back.
package core
