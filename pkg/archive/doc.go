// Copyright © 2018 One Concern

// Package archive locates and duplicates Xcode archives.
//
// Archives are stored under a root directory holding one folder per day, each
// folder holding one or more .xcarchive bundles:
//
//  Archives/
//    2020-08-29/
//      MyApp 29-08-2020, 14.22.xcarchive/
//        Info.plist
//        dSYMs/
//          MyApp.app.dSYM/
//            Contents/
//              Info.plist
//
// All operations go through an afero.Fs, so the layout may be mocked in memory.
package archive
